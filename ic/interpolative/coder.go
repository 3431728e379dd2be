// Package interpolative implements binary interpolative coding of
// nondecreasing integer sequences.
//
// The coder bisects an index range whose end values are already known and
// transmits the midpoint value as an offset from the lower bound, using just
// enough bits to cover the bounding range. Sub-ranges whose bounds are equal
// cost nothing. Encoder and decoder visit nodes in the same pre-order (parent,
// left child, right child); the bit width at every node depends only on values
// the decoder already holds.
package interpolative

import (
	"fmt"
	"math/bits"

	"github.com/cocosip/go-interp-codec/ic/bitstream"
	"github.com/cocosip/go-interp-codec/ic/common"
)

// span is an index range whose end values are known
type span struct {
	low, high int
}

// BitWidth returns the number of bits needed to code any offset in [0, rng],
// i.e. ceil(log2(rng+1)). It is 0 when rng is 0.
func BitWidth(rng uint64) uint {
	return uint(bits.Len64(rng))
}

// Encode writes the interior of C to w. C[0] and C[len(C)-1] are not written;
// the caller transmits them out of band.
func Encode(w *bitstream.Writer, c []uint64) error {
	if len(c) < 2 {
		return nil
	}
	return EncodeRange(w, c, 0, len(c)-1)
}

// Decode fills the interior of C from r. C[0] and C[len(C)-1] must be set.
func Decode(r *bitstream.Reader, c []uint64) error {
	if len(c) < 2 {
		return nil
	}
	return DecodeRange(r, c, 0, len(c)-1)
}

// EncodeRange codes the values strictly between indices low and high
func EncodeRange(w *bitstream.Writer, c []uint64, low, high int) error {
	if err := checkRange(len(c), low, high); err != nil {
		return err
	}

	stack := make([]span, 0, 64)
	stack = append(stack, span{low, high})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.high-s.low <= 1 {
			continue
		}

		lo, hi := c[s.low], c[s.high]
		if hi < lo {
			return fmt.Errorf("%w: C[%d]=%d > C[%d]=%d", common.ErrNotNondecreasing, s.low, lo, s.high, hi)
		}

		if hi == lo {
			// Interior is forced; nothing is emitted
			for i := s.low + 1; i < s.high; i++ {
				if c[i] != lo {
					return fmt.Errorf("%w: C[%d]=%d between equal bounds %d", common.ErrNotNondecreasing, i, c[i], lo)
				}
			}
			continue
		}

		mid := s.low + (s.high-s.low)/2
		v := c[mid]
		if v < lo || v > hi {
			return fmt.Errorf("%w: C[%d]=%d outside [%d, %d]", common.ErrNotNondecreasing, mid, v, lo, hi)
		}

		if err := w.WriteBits(v-lo, BitWidth(hi-lo)); err != nil {
			return err
		}

		// Right pushed first so the left child is visited next
		stack = append(stack, span{mid, s.high}, span{s.low, mid})
	}

	return nil
}

// DecodeRange reconstructs the values strictly between indices low and high.
// c[low] and c[high] must already hold their final values.
func DecodeRange(r *bitstream.Reader, c []uint64, low, high int) error {
	if err := checkRange(len(c), low, high); err != nil {
		return err
	}

	stack := make([]span, 0, 64)
	stack = append(stack, span{low, high})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.high-s.low <= 1 {
			continue
		}

		lo, hi := c[s.low], c[s.high]
		if hi < lo {
			return fmt.Errorf("%w: C[%d]=%d > C[%d]=%d", common.ErrCorruptSequence, s.low, lo, s.high, hi)
		}

		if hi == lo {
			for i := s.low + 1; i < s.high; i++ {
				c[i] = lo
			}
			continue
		}

		offset, err := r.ReadBits(BitWidth(hi - lo))
		if err != nil {
			return err
		}
		if offset > hi-lo {
			return fmt.Errorf("%w: offset %d exceeds range %d", common.ErrCorruptSequence, offset, hi-lo)
		}

		mid := s.low + (s.high-s.low)/2
		c[mid] = lo + offset

		stack = append(stack, span{mid, s.high}, span{s.low, mid})
	}

	return nil
}

func checkRange(n, low, high int) error {
	if low < 0 || high >= n || low > high {
		return fmt.Errorf("%w: range [%d, %d] outside sequence of length %d", common.ErrValidation, low, high, n)
	}
	return nil
}
