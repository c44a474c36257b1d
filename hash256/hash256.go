// Package hash256 is a 32 byte hash value, such as the hash over the input
// outpoints of a transaction that a payload commits to.
package hash256

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/pkg/errors"

	"protx.lol/hex"
)

const Len = sha256.Size

// T holds the hash bytes in wire order.
type T [Len]byte

func New() (h *T) { return &T{} }

// Sum is the double SHA256 of b.
func Sum(b []byte) (h T) {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func NewFromBytes(b []byte) (h *T, err error) {
	if len(b) != Len {
		err = errorf.D("hash bytes incorrect size, got %d require %d", len(b), Len)
		return
	}
	h = New()
	copy(h[:], b)
	return
}

func NewFromString(s string) (h *T, err error) {
	h = New()
	if err = hex.DecFixed(h[:], s); chk.D(err) {
		return nil, errors.Wrap(err, "hash")
	}
	return
}

func (h T) String() string  { return hex.Enc(h[:]) }
func (h T) Bytes() []byte   { return h[:] }
func (h T) IsZero() bool    { return h == T{} }
func (h T) Equal(h2 T) bool { return h == h2 }

func (h T) MarshalJSON() (b []byte, err error) {
	b = make([]byte, 0, 2*Len+2)
	b = append(b, '"')
	b = hex.EncAppend(b, h[:])
	b = append(b, '"')
	return
}

func (h *T) UnmarshalJSON(b []byte) (err error) {
	if string(b) == "null" {
		return
	}
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "hash must be a hex string")
	}
	var n *T
	if n, err = NewFromString(s); err != nil {
		return
	}
	*h = *n
	return
}
