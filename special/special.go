// Package special selects the payload codec for a special transaction from
// the type carried in the transaction, out of the closed set of payload
// variants this module implements.
package special

import (
	"protx.lol/payload"
	"protx.lol/payload/proreg"
)

// New returns an empty payload of type t.
func New(t payload.Type) (p payload.I, err error) {
	switch t {
	case payload.ProviderRegister:
		p = proreg.New()
	default:
		err = errorf.D("%w: %s", payload.ErrUnknownType, t)
	}
	return
}

// Supported reports whether there is a payload codec for t.
func Supported(t payload.Type) bool {
	_, err := New(t)
	return err == nil
}

// Decode parses the binary payload of a transaction of type t.
func Decode(t payload.Type, b []byte) (p payload.I, err error) {
	if p, err = New(t); err != nil {
		return
	}
	if err = p.UnmarshalBinary(b); chk.T(err) {
		return nil, err
	}
	return
}

// FromJSON hydrates the payload of a transaction of type t from its JSON
// projection.
func FromJSON(t payload.Type, b []byte) (p payload.I, err error) {
	if p, err = New(t); err != nil {
		return
	}
	if err = p.UnmarshalJSON(b); chk.T(err) {
		return nil, err
	}
	return
}

// Encode validates and encodes p, returning the type to put in the
// transaction alongside the bytes.
func Encode(p payload.I) (t payload.Type, b []byte, err error) {
	if p == nil {
		err = payload.ErrMissingPayload
		return
	}
	if b, err = p.MarshalBinary(); err != nil {
		return
	}
	t = p.Type()
	return
}
