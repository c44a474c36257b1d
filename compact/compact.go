// Package compact is the compact size integer used to prefix variable length
// fields on the wire.
//
//	value < 0xfd         [ 1 byte value ]
//	value <= 0xffff      [ 0xfd ][ 2 bytes little endian ]
//	value <= 0xffffffff  [ 0xfe ][ 4 bytes little endian ]
//	otherwise            [ 0xff ][ 8 bytes little endian ]
//
// Only the shortest encoding of a value is accepted when decoding, so a
// decoded buffer always re-encodes to the same bytes.
package compact

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

const (
	tag16 = 0xfd
	tag32 = 0xfe
	tag64 = 0xff
)

// MaxLen is the widest encoding.
const MaxLen = 9

var (
	ErrTruncated    = errors.New("compact size truncated")
	ErrNonCanonical = errors.New("compact size not minimally encoded")
)

// Len returns the number of bytes Append writes for v.
func Len(v uint64) int {
	switch {
	case v < tag16:
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return MaxLen
	}
}

// Append writes the compact size encoding of v to dst.
func Append(dst []byte, v uint64) (b []byte) {
	switch {
	case v < tag16:
		b = append(dst, byte(v))
	case v <= math.MaxUint16:
		b = binary.LittleEndian.AppendUint16(append(dst, tag16), uint16(v))
	case v <= math.MaxUint32:
		b = binary.LittleEndian.AppendUint32(append(dst, tag32), uint32(v))
	default:
		b = binary.LittleEndian.AppendUint64(append(dst, tag64), v)
	}
	return
}

// Decode reads a compact size from the front of b, returning the value and
// the number of bytes it occupied.
func Decode(b []byte) (v uint64, n int, err error) {
	if len(b) < 1 {
		err = ErrTruncated
		return
	}
	var least uint64
	switch b[0] {
	case tag16:
		n, least = 3, tag16
	case tag32:
		n, least = 5, math.MaxUint16+1
	case tag64:
		n, least = MaxLen, math.MaxUint32+1
	default:
		return uint64(b[0]), 1, nil
	}
	if len(b) < n {
		err = errors.Wrapf(ErrTruncated, "need %d bytes have %d", n, len(b))
		n = 0
		return
	}
	switch n {
	case 3:
		v = uint64(binary.LittleEndian.Uint16(b[1:]))
	case 5:
		v = uint64(binary.LittleEndian.Uint32(b[1:]))
	default:
		v = binary.LittleEndian.Uint64(b[1:])
	}
	if v < least {
		err = errors.Wrapf(ErrNonCanonical, "value %d in %d bytes", v, n)
		v, n = 0, 0
		return
	}
	return
}
