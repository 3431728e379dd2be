package common

import "math/bits"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BitLength returns the number of bits needed to represent v (0 for v == 0)
func BitLength(v uint64) uint {
	return uint(bits.Len64(v))
}
