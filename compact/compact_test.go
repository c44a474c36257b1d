package compact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestAppend_Decode(t *testing.T) {
	for range 100000 {
		v := frand.Uint64n(math.MaxUint64) >> frand.Intn(64)
		b := Append(nil, v)
		require.Len(t, b, Len(v))
		u, n, err := Decode(b)
		require.NoError(t, err)
		require.Equal(t, v, u)
		require.Equal(t, len(b), n)
	}
}

func TestBoundaries(t *testing.T) {
	for _, c := range []struct {
		v uint64
		b []byte
	}{
		{0, []byte{0}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0, 0, 0, 0, 1, 0, 0, 0}},
	} {
		require.Equal(t, c.b, Append(nil, c.v), "value %d", c.v)
		v, n, err := Decode(c.b)
		require.NoError(t, err)
		require.Equal(t, c.v, v)
		require.Equal(t, len(c.b), n)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, c := range []struct {
		b   []byte
		err error
	}{
		{nil, ErrTruncated},
		{[]byte{0xfd, 0x01}, ErrTruncated},
		{[]byte{0xfe, 0, 0, 0}, ErrTruncated},
		{[]byte{0xff, 0, 0, 0, 0, 0, 0, 0}, ErrTruncated},
		{[]byte{0xfd, 0xfc, 0x00}, ErrNonCanonical},
		{[]byte{0xfe, 0xff, 0xff, 0, 0}, ErrNonCanonical},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}, ErrNonCanonical},
	} {
		_, n, err := Decode(c.b)
		require.ErrorIs(t, err, c.err, "input %x", c.b)
		require.Zero(t, n)
	}
}
