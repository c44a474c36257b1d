// Package cursor reads and writes the fixed width and length prefixed fields
// of a flat binary payload. Integers are little endian unless the method
// name says otherwise.
package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"protx.lol/compact"
)

// ErrShortBuffer is returned when a read needs more bytes than remain.
var ErrShortBuffer = errors.New("read past end of buffer")

// Reader is a forward only cursor over a byte slice. A failed read does not
// move the cursor.
type Reader struct {
	b   []byte
	pos int
}

func NewReader(b []byte) (r *Reader) { return &Reader{b: b} }

// Pos is the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.pos }

// Len is the number of bytes not yet consumed.
func (r *Reader) Len() int { return len(r.b) - r.pos }

// Finished reports whether every byte has been consumed.
func (r *Reader) Finished() bool { return r.pos == len(r.b) }

func (r *Reader) next(n int) (b []byte, err error) {
	if n < 0 || r.Len() < n {
		err = errors.Wrapf(ErrShortBuffer, "at offset %d need %d bytes have %d",
			r.pos, n, r.Len())
		return
	}
	b = r.b[r.pos : r.pos+n]
	r.pos += n
	return
}

func (r *Reader) Uint8() (v uint8, err error) {
	var b []byte
	if b, err = r.next(1); err != nil {
		return
	}
	v = b[0]
	return
}

func (r *Reader) Uint16LE() (v uint16, err error) {
	var b []byte
	if b, err = r.next(2); err != nil {
		return
	}
	v = binary.LittleEndian.Uint16(b)
	return
}

// Uint16BE reads a network byte order uint16.
func (r *Reader) Uint16BE() (v uint16, err error) {
	var b []byte
	if b, err = r.next(2); err != nil {
		return
	}
	v = binary.BigEndian.Uint16(b)
	return
}

func (r *Reader) Uint32LE() (v uint32, err error) {
	var b []byte
	if b, err = r.next(4); err != nil {
		return
	}
	v = binary.LittleEndian.Uint32(b)
	return
}

func (r *Reader) Uint64LE() (v uint64, err error) {
	var b []byte
	if b, err = r.next(8); err != nil {
		return
	}
	v = binary.LittleEndian.Uint64(b)
	return
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) (b []byte, err error) {
	var s []byte
	if s, err = r.next(n); err != nil {
		return
	}
	b = make([]byte, n)
	copy(b, s)
	return
}

// Fill copies the next len(dst) bytes into dst.
func (r *Reader) Fill(dst []byte) (err error) {
	var s []byte
	if s, err = r.next(len(dst)); err != nil {
		return
	}
	copy(dst, s)
	return
}

// VarInt reads a compact size integer.
func (r *Reader) VarInt() (v uint64, err error) {
	var n int
	if v, n, err = compact.Decode(r.b[r.pos:]); err != nil {
		err = errors.Wrapf(err, "at offset %d", r.pos)
		return
	}
	r.pos += n
	return
}

// VarBytes reads a compact size length followed by that many bytes. A zero
// length gives a nil slice. The length is checked against the remaining bytes
// before anything is allocated.
func (r *Reader) VarBytes() (b []byte, err error) {
	start := r.pos
	var l uint64
	if l, err = r.VarInt(); err != nil {
		return
	}
	if l > uint64(r.Len()) {
		err = errors.Wrapf(ErrShortBuffer, "at offset %d length prefix %d exceeds %d remaining",
			start, l, r.Len())
		r.pos = start
		return
	}
	if l == 0 {
		return
	}
	return r.Bytes(int(l))
}
