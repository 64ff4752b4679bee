// Package wire holds the clamped byte cursor shared by the protocol decoders.
//
// Decoding in this module is a best-effort structural remap: a buffer shorter
// than a header must still produce a view, with the absent fields at their
// zero value. The Reader encodes that policy once so the per-protocol
// decoders read fields unconditionally instead of bounds-checking every
// offset.
package wire

import "encoding/binary"

// Reader walks a buffer front to back handing out big-endian fields. Reads
// past the end of the buffer yield zero values and empty slices instead of
// panicking; a field split by the end of the buffer is treated as absent.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) Reader { return Reader{buf: buf} }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.off }

// Uint8 consumes one byte, zero if none remain.
func (r *Reader) Uint8() uint8 {
	if r.Len() < 1 {
		r.off = len(r.buf)
		return 0
	}
	v := r.buf[r.off]
	r.off++
	return v
}

// Uint16 consumes a big-endian 16-bit word, zero if fewer than 2 bytes remain.
func (r *Reader) Uint16() uint16 {
	if r.Len() < 2 {
		r.off = len(r.buf)
		return 0
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

// Uint32 consumes a big-endian 32-bit word, zero if fewer than 4 bytes remain.
func (r *Reader) Uint32() uint32 {
	if r.Len() < 4 {
		r.off = len(r.buf)
		return 0
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

// Bytes consumes up to n bytes and returns them as a subslice of the original
// buffer, clamped to what remains.
func (r *Reader) Bytes(n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > r.Len() {
		n = r.Len()
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Copy fills dst from the buffer, leaving the tail of dst zeroed when fewer
// bytes remain than dst holds.
func (r *Reader) Copy(dst []byte) {
	n := copy(dst, r.buf[r.off:])
	r.off += n
}

// Rest consumes and returns everything unread.
func (r *Reader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}
