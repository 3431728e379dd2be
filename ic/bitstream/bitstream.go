// Package bitstream provides MSB-first bit-level I/O over in-memory buffers.
package bitstream

import (
	"fmt"

	"github.com/cocosip/go-interp-codec/ic/common"
)

// MaxWidth is the widest field a single read or write accepts
const MaxWidth = 64

// Writer appends fixed-width fields to a growable byte buffer
type Writer struct {
	buf     []byte
	current byte // partially filled byte
	pending uint // number of bits in current (0-7)
}

// NewWriter creates an empty bit writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBit writes a single bit
func (w *Writer) WriteBit(bit int) {
	w.current = (w.current << 1) | byte(bit&1)
	w.pending++
	if w.pending == 8 {
		w.buf = append(w.buf, w.current)
		w.current = 0
		w.pending = 0
	}
}

// WriteBits writes the low width bits of value, most significant bit first.
// value must be below 2^width. A zero width writes nothing.
func (w *Writer) WriteBits(value uint64, width uint) error {
	if width > MaxWidth {
		return fmt.Errorf("%w: width %d exceeds %d", common.ErrValueTooWide, width, MaxWidth)
	}
	if width < MaxWidth && value>>width != 0 {
		return fmt.Errorf("%w: %d in %d bits", common.ErrValueTooWide, value, width)
	}

	for width > 0 {
		// Fill the current byte as far as possible
		space := 8 - w.pending
		if space > width {
			space = width
		}

		shift := width - space
		chunk := byte((value >> shift) & (1<<space - 1))

		w.current = (w.current << space) | chunk
		w.pending += space
		width -= space

		if w.pending == 8 {
			w.buf = append(w.buf, w.current)
			w.current = 0
			w.pending = 0
		}
	}
	return nil
}

// Len returns the number of bits written so far
func (w *Writer) Len() int {
	return len(w.buf)*8 + int(w.pending)
}

// Bytes returns the written bits packed MSB-first, zero-padded to a byte boundary.
// The writer can keep accepting bits afterwards.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+1)
	copy(out, w.buf)
	if w.pending > 0 {
		out = append(out, w.current<<(8-w.pending))
	}
	return out
}

// Reader consumes fixed-width fields front to back from an immutable buffer
type Reader struct {
	buf []byte
	pos int // bit cursor
}

// NewReader creates a bit reader over buf. buf is not modified.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBit reads a single bit
func (r *Reader) ReadBit() (int, error) {
	if r.pos >= len(r.buf)*8 {
		return 0, common.ErrInsufficientBits
	}
	bit := int(r.buf[r.pos>>3]>>(7-uint(r.pos&7))) & 1
	r.pos++
	return bit, nil
}

// ReadBits reads width bits as an unsigned integer. A zero width returns 0
// and consumes nothing.
func (r *Reader) ReadBits(width uint) (uint64, error) {
	if width > MaxWidth {
		return 0, fmt.Errorf("%w: width %d exceeds %d", common.ErrValueTooWide, width, MaxWidth)
	}
	if int(width) > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d, have %d", common.ErrInsufficientBits, width, r.Remaining())
	}

	var result uint64
	for width > 0 {
		// Take as many bits as remain in the current byte
		offset := uint(r.pos & 7)
		avail := 8 - offset
		take := width
		if take > avail {
			take = avail
		}

		b := r.buf[r.pos>>3]
		bits := uint64(b>>(avail-take)) & (1<<take - 1)
		result = (result << take) | bits

		r.pos += int(take)
		width -= take
	}
	return result, nil
}

// Remaining returns the number of unread bits, padding included
func (r *Reader) Remaining() int {
	return len(r.buf)*8 - r.pos
}

// Pos returns the number of bits consumed so far
func (r *Reader) Pos() int {
	return r.pos
}
