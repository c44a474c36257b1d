// Package hexbytes is an opaque variable length byte sequence, such as a
// script or a signature, whose JSON form is hex text.
package hexbytes

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"protx.lol/hex"
)

type T []byte

func NewFromString(s string) (b T, err error) {
	if b, err = hex.DecAppend(nil, []byte(s)); err != nil {
		return nil, errors.Wrap(err, "opaque bytes")
	}
	return
}

func (b T) String() string { return hex.Enc(b) }

// Equal treats nil and empty as the same.
func (b T) Equal(b2 T) bool { return bytes.Equal(b, b2) }

func (b T) MarshalJSON() (j []byte, err error) {
	j = make([]byte, 0, 2*len(b)+2)
	j = append(j, '"')
	j = hex.EncAppend(j, b)
	j = append(j, '"')
	return
}

// UnmarshalJSON accepts hex text. null and "" both give an empty sequence.
func (b *T) UnmarshalJSON(j []byte) (err error) {
	if string(j) == "null" {
		*b = nil
		return
	}
	var s string
	if err = json.Unmarshal(j, &s); err != nil {
		return errors.Wrap(err, "opaque bytes must be a hex string")
	}
	var n T
	if n, err = NewFromString(s); err != nil {
		return
	}
	*b = n
	return
}
