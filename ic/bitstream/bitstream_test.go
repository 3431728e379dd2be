package bitstream

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/cocosip/go-interp-codec/ic/common"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		value uint64
		width uint
	}{
		{0, 0},
		{0, 1},
		{1, 1},
		{5, 3},
		{0xAB, 8},
		{0x1FF, 9},
		{12345, 17},
		{1<<32 - 1, 32},
		{1<<40 + 7, 41},
		{1<<63 + 1, 64},
		{1<<64 - 1, 64},
	}

	w := NewWriter()
	total := 0
	for _, tt := range tests {
		if err := w.WriteBits(tt.value, tt.width); err != nil {
			t.Fatalf("WriteBits(%d, %d) failed: %v", tt.value, tt.width, err)
		}
		total += int(tt.width)
	}

	if w.Len() != total {
		t.Errorf("Len = %d, want %d", w.Len(), total)
	}

	data := w.Bytes()
	if want := (total + 7) / 8; len(data) != want {
		t.Errorf("Bytes length = %d, want %d", len(data), want)
	}

	r := NewReader(data)
	for _, tt := range tests {
		got, err := r.ReadBits(tt.width)
		if err != nil {
			t.Fatalf("ReadBits(%d) failed: %v", tt.width, err)
		}
		if got != tt.value {
			t.Errorf("ReadBits(%d) = %d, want %d", tt.width, got, tt.value)
		}
	}

	if r.Remaining() >= 8 {
		t.Errorf("Remaining = %d, expected only padding", r.Remaining())
	}
}

func TestZeroWidth(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBits(0, 0); err != nil {
		t.Fatalf("WriteBits(0, 0) failed: %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("Len = %d after zero-width write", w.Len())
	}
	if len(w.Bytes()) != 0 {
		t.Errorf("Bytes = %v, want empty", w.Bytes())
	}

	r := NewReader(nil)
	v, err := r.ReadBits(0)
	if err != nil {
		t.Fatalf("ReadBits(0) on empty stream failed: %v", err)
	}
	if v != 0 || r.Pos() != 0 {
		t.Errorf("ReadBits(0) = %d at pos %d, want 0 at pos 0", v, r.Pos())
	}
}

func TestWriteBitsRejectsWideValue(t *testing.T) {
	w := NewWriter()
	tests := []struct {
		value uint64
		width uint
	}{
		{1, 0},
		{2, 1},
		{256, 8},
		{0, 65},
	}
	for _, tt := range tests {
		err := w.WriteBits(tt.value, tt.width)
		if !errors.Is(err, common.ErrRange) {
			t.Errorf("WriteBits(%d, %d) error = %v, want ErrRange", tt.value, tt.width, err)
		}
	}
	if w.Len() != 0 {
		t.Errorf("rejected writes changed the stream: Len = %d", w.Len())
	}
}

func TestMSBFirstPacking(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	if err := w.WriteBits(0b0110, 4); err != nil {
		t.Fatal(err)
	}
	// 1 0110 + 3 padding zeros
	if got, want := w.Bytes(), []byte{0b10110000}; !bytes.Equal(got, want) {
		t.Errorf("Bytes = %08b, want %08b", got, want)
	}

	if err := w.WriteBits(0b101, 3); err != nil {
		t.Fatal(err)
	}
	if got, want := w.Bytes(), []byte{0b10110101}; !bytes.Equal(got, want) {
		t.Errorf("Bytes = %08b, want %08b", got, want)
	}
}

func TestReadPastEnd(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(6); err != nil {
		t.Fatalf("ReadBits(6) failed: %v", err)
	}
	_, err := r.ReadBits(3)
	if !errors.Is(err, common.ErrInsufficientBits) || !errors.Is(err, common.ErrFormat) {
		t.Errorf("ReadBits past end error = %v, want ErrInsufficientBits", err)
	}
	// A failed read leaves the cursor in place
	if r.Pos() != 6 {
		t.Errorf("Pos = %d after failed read, want 6", r.Pos())
	}
	if _, err := r.ReadBits(2); err != nil {
		t.Errorf("ReadBits(2) failed: %v", err)
	}
	if _, err := r.ReadBit(); !errors.Is(err, common.ErrInsufficientBits) {
		t.Errorf("ReadBit past end error = %v", err)
	}
}

func TestRandomFields(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	type field struct {
		value uint64
		width uint
	}
	fields := make([]field, 5000)
	w := NewWriter()
	for i := range fields {
		width := uint(rng.Intn(MaxWidth + 1))
		var value uint64
		if width > 0 {
			value = rng.Uint64() >> (MaxWidth - width)
		}
		fields[i] = field{value, width}
		if err := w.WriteBits(value, width); err != nil {
			t.Fatalf("field %d: %v", i, err)
		}
	}

	r := NewReader(w.Bytes())
	for i, f := range fields {
		got, err := r.ReadBits(f.width)
		if err != nil {
			t.Fatalf("field %d: %v", i, err)
		}
		if got != f.value {
			t.Fatalf("field %d: got %d, want %d (width %d)", i, got, f.value, f.width)
		}
	}
}

func BenchmarkWriteBits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		w := NewWriter()
		for j := 0; j < 4096; j++ {
			_ = w.WriteBits(uint64(j)&0x3FF, 10)
		}
		_ = w.Bytes()
	}
}
