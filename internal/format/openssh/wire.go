package openssh

import "encoding/binary"

// Writer builds SSH wire encoded buffers (RFC 4251 section 5).
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Uint32 appends v in network byte order.
func (w *Writer) Uint32(v uint32) *Writer {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
	return w
}

// Bytes appends b as a length-prefixed string.
func (w *Writer) Bytes(b []byte) *Writer {
	w.Uint32(uint32(len(b)))
	w.buf = append(w.buf, b...)
	return w
}

// String appends s as a length-prefixed string.
func (w *Writer) String(s string) *Writer {
	return w.Bytes([]byte(s))
}

// Raw appends b with no length prefix.
func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Output returns the accumulated buffer.
func (w *Writer) Output() []byte { return w.buf }
