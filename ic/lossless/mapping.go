package lossless

// MapErrorValue folds a signed residual onto the nonnegative integers:
// e >= 0 maps to 2e, e < 0 maps to 2|e|-1
func MapErrorValue(e int32) uint64 {
	if e >= 0 {
		return 2 * uint64(e)
	}
	return 2*uint64(-int64(e)) - 1
}

// UnmapErrorValue reverses MapErrorValue:
// even n maps to n/2, odd n maps to -(n+1)/2
func UnmapErrorValue(n uint64) int64 {
	if n&1 == 0 {
		return int64(n >> 1)
	}
	return -int64(n>>1) - 1
}
