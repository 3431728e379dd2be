package lossless

import (
	"fmt"
	"math"

	"github.com/cocosip/go-interp-codec/ic/common"
)

// Cumulate returns the running sums of n: C[0] = N[0], C[i] = C[i-1] + N[i].
// The result is nondecreasing and its last element is sum(N).
func Cumulate(n []uint64) ([]uint64, error) {
	c := make([]uint64, len(n))
	var acc uint64
	for i, v := range n {
		if v > math.MaxUint64-acc {
			return nil, fmt.Errorf("%w: at index %d", common.ErrCumulativeOverflow, i)
		}
		acc += v
		c[i] = acc
	}
	return c, nil
}

// Difference reverses Cumulate: N[0] = C[0], N[i] = C[i] - C[i-1].
// A decreasing step means the sequence is corrupt.
func Difference(c []uint64) ([]uint64, error) {
	n := make([]uint64, len(c))
	var prev uint64
	for i, v := range c {
		if v < prev {
			return nil, fmt.Errorf("%w: C[%d]=%d below C[%d]=%d", common.ErrCorruptSequence, i, v, i-1, prev)
		}
		n[i] = v - prev
		prev = v
	}
	return n, nil
}
