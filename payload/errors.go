package payload

import (
	"github.com/pkg/errors"
)

// Decoding and validation failures are reported wrapping one of these, so
// callers can tell them apart with errors.Is. None of them are transient.
var (
	// ErrMalformedPayload is a binary payload that is truncated, has bytes
	// left over, or has a length prefix that does not fit.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrMissingPayload is a JSON payload that is absent.
	ErrMissingPayload = errors.New("no payload specified")
	// ErrInvalidFieldType is a JSON field holding the wrong kind of value.
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrInvalidField is a field whose value is out of range.
	ErrInvalidField = errors.New("invalid field value")
	// ErrUnknownType is a special transaction type with no payload codec.
	ErrUnknownType = errors.New("unknown payload type")
)
