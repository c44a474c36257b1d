package proreg

import (
	"bytes"
	"encoding/json"

	"protx.lol/payload"
)

// numeric are the fields that must be JSON numbers for a payload object to
// be accepted at all.
var numeric = []string{"version", "type", "mode"}

// falsy inputs are treated as no payload.
var falsy = [][]byte{[]byte("null"), []byte("false"), []byte("0"), []byte(`""`)}

// ValidateJSON checks the shape of a JSON payload object. It is applied both
// to input before it is decoded and to output after it is encoded.
func ValidateJSON(b []byte) (err error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return payload.ErrMissingPayload
	}
	for _, f := range falsy {
		if bytes.Equal(b, f) {
			return payload.ErrMissingPayload
		}
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(b, &fields); err != nil {
		return errorf.D("%w: payload is not a JSON object: %w",
			payload.ErrInvalidFieldType, err)
	}
	for _, name := range numeric {
		if !isNumber(fields[name]) {
			return errorf.D("%w: %s must be a number",
				payload.ErrInvalidFieldType, name)
		}
	}
	return
}

func isNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// plain has the fields of T and none of its methods, so encoding/json can be
// used from inside MarshalJSON and UnmarshalJSON.
type plain T

// MarshalJSON projects the payload to an object with hex text for every hash,
// key and opaque byte field, and the address as dotted-decimal text.
func (p *T) MarshalJSON() (b []byte, err error) {
	if b, err = json.Marshal((*plain)(p)); chk.E(err) {
		return
	}
	if err = ValidateJSON(b); chk.E(err) {
		return nil, err
	}
	return
}

// UnmarshalJSON hydrates the payload from its JSON projection. Values are
// taken as given, the version included, and then validated.
func (p *T) UnmarshalJSON(b []byte) (err error) {
	if err = ValidateJSON(b); err != nil {
		return
	}
	var v plain
	if err = json.Unmarshal(b, &v); err != nil {
		return errorf.D("%w: %w", payload.ErrInvalidFieldType, err)
	}
	n := T(v)
	if err = n.Validate(); err != nil {
		return
	}
	*p = n
	return
}

// FromJSON creates a payload from its JSON projection.
func FromJSON(b []byte) (p *T, err error) {
	p = &T{}
	if err = p.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return
}

// ToJSON is MarshalJSON.
func (p *T) ToJSON() (b []byte, err error) { return p.MarshalJSON() }
