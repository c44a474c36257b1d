// Package hex is the hexadecimal text form used for every hash, key and
// opaque byte field in the JSON projection of a payload.
package hex

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/templexxx/xhex"
)

var Enc = hex.EncodeToString
var Dec = hex.DecodeString
var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// ErrLength is returned by DecFixed when the text does not hold exactly the
// required number of bytes.
var ErrLength = errors.New("hex text has wrong length")

// EncAppend appends the hex of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	b = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(b[l:], src)
	return
}

// DecAppend appends the bytes decoded from the hex text src to dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = errors.Wrapf(hex.ErrLength, "%d hex characters", len(src))
		return
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); err != nil {
		b = dst
		return
	}
	return
}

// DecFixed decodes src into dst, which it must fill exactly.
func DecFixed(dst []byte, src string) (err error) {
	if len(src) != 2*len(dst) {
		return errors.Wrapf(ErrLength, "got %d characters require %d",
			len(src), 2*len(dst))
	}
	if _, err = hex.Decode(dst, []byte(src)); err != nil {
		return
	}
	return
}
