// Package keyid is the 20 byte hash of a public key that identifies the
// owner, operator and voting keys of a provider.
package keyid

import (
	"encoding/json"

	"github.com/pkg/errors"

	"protx.lol/hex"
)

// Len is the size of a key id on the wire.
const Len = 20

// T holds the bytes of a key id in the order they were captured. Nothing here
// reverses them.
type T [Len]byte

func New() (k *T) { return &T{} }

// NewFromBytes requires exactly Len bytes.
func NewFromBytes(b []byte) (k *T, err error) {
	if len(b) != Len {
		err = errorf.D("key id bytes incorrect size, got %d require %d", len(b), Len)
		return
	}
	k = New()
	copy(k[:], b)
	return
}

// NewFromString decodes 2*Len hex characters.
func NewFromString(s string) (k *T, err error) {
	k = New()
	if err = hex.DecFixed(k[:], s); chk.D(err) {
		k = nil
		err = errors.Wrap(err, "key id")
		return
	}
	return
}

func (k T) String() string { return hex.Enc(k[:]) }

func (k T) Bytes() []byte { return k[:] }

func (k T) IsZero() bool { return k == T{} }

func (k T) Equal(k2 T) bool { return k == k2 }

func (k T) MarshalJSON() (b []byte, err error) {
	b = make([]byte, 0, 2*Len+2)
	b = append(b, '"')
	b = hex.EncAppend(b, k[:])
	b = append(b, '"')
	return
}

// UnmarshalJSON accepts a hex string. A JSON null leaves the key id as it is.
func (k *T) UnmarshalJSON(b []byte) (err error) {
	if string(b) == "null" {
		return
	}
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "key id must be a hex string")
	}
	var n *T
	if n, err = NewFromString(s); err != nil {
		return
	}
	*k = *n
	return
}
