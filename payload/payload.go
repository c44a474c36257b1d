// Package payload is the contract every special transaction payload
// implements, so the transaction carrying one can encode, hash, sign and
// project it without knowing which variant it holds.
//
// The variant is chosen by the Type discriminant carried by the transaction,
// never by inspecting the payload.
package payload

import (
	"encoding"
	"encoding/json"
)

// I is a special transaction payload.
//
// UnmarshalBinary must consume the whole buffer. MarshalBinary and
// AppendBinary must produce the exact inverse of UnmarshalBinary, and fail when
// Validate fails. MarshalJSON re-validates the shape of what it produces.
type I interface {
	Type() Type
	Validate() error
	encoding.BinaryAppender
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	json.Marshaler
	json.Unmarshaler
}
