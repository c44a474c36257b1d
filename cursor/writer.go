package cursor

import (
	"encoding/binary"

	"protx.lol/compact"
)

// Writer appends fields to a byte slice.
type Writer struct {
	b []byte
}

// NewWriter appends to dst, which may be nil.
func NewWriter(dst []byte) (w *Writer) { return &Writer{b: dst} }

// Bytes returns everything written, including what was in the dst passed to
// NewWriter.
func (w *Writer) Bytes() []byte { return w.b }

func (w *Writer) Len() int { return len(w.b) }

func (w *Writer) Uint8(v uint8) { w.b = append(w.b, v) }

func (w *Writer) Uint16LE(v uint16) { w.b = binary.LittleEndian.AppendUint16(w.b, v) }

// Uint16BE writes v in network byte order.
func (w *Writer) Uint16BE(v uint16) { w.b = binary.BigEndian.AppendUint16(w.b, v) }

func (w *Writer) Uint32LE(v uint32) { w.b = binary.LittleEndian.AppendUint32(w.b, v) }

func (w *Writer) Uint64LE(v uint64) { w.b = binary.LittleEndian.AppendUint64(w.b, v) }

// Write appends raw bytes.
func (w *Writer) Write(b []byte) { w.b = append(w.b, b...) }

func (w *Writer) VarInt(v uint64) { w.b = compact.Append(w.b, v) }

// VarBytes writes one compact size length prefix then b.
func (w *Writer) VarBytes(b []byte) {
	w.VarInt(uint64(len(b)))
	w.Write(b)
}
