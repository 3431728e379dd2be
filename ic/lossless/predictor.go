package lossless

// MED (Median Edge Detection) predictor, the LOCO-I gradient-adaptive rule

// OriginRule selects the prediction used for the top-left sample, the only
// sample without causal neighbours.
type OriginRule int

const (
	// OriginZero predicts 0, so the first residual carries the raw sample and
	// Inverse reproduces the plane exactly.
	OriginZero OriginRule = iota

	// OriginSelf predicts the sample itself, giving a residual of 0. This is
	// the legacy encoder's rule and is lossy at (0,0): Inverse assigns the
	// top-left sample from the residual, so it always decodes as 0. Use it only
	// to produce streams byte-identical to that encoder.
	OriginSelf
)

// String returns the rule name
func (r OriginRule) String() string {
	switch r {
	case OriginZero:
		return "zero"
	case OriginSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Predict computes the MED prediction for the current pixel
// a = left pixel (West)
// b = top pixel (North)
// c = top-left pixel (North-West)
func Predict(a, b, c int) int {
	if c >= max(a, b) {
		return min(a, b)
	}
	if c <= min(a, b) {
		return max(a, b)
	}
	return a + b - c
}

// Forward computes the residual of every sample of a row-major plane against
// its causal prediction.
//
//	row 0, col 0: prediction per origin rule
//	row 0:        left
//	col 0:        top
//	otherwise:    Predict(left, top, top-left)
func Forward(plane []byte, width, height int, origin OriginRule) []int32 {
	residuals := make([]int32, width*height)
	if len(residuals) == 0 {
		return residuals
	}

	if origin == OriginSelf {
		residuals[0] = 0
	} else {
		residuals[0] = int32(plane[0])
	}

	// First row: left neighbour only
	for x := 1; x < width; x++ {
		residuals[x] = int32(plane[x]) - int32(plane[x-1])
	}

	for y := 1; y < height; y++ {
		row := y * width
		up := row - width

		// First column: top neighbour only
		residuals[row] = int32(plane[row]) - int32(plane[up])

		for x := 1; x < width; x++ {
			a := int(plane[row+x-1])
			b := int(plane[up+x])
			c := int(plane[up+x-1])
			residuals[row+x] = int32(int(plane[row+x]) - Predict(a, b, c))
		}
	}

	return residuals
}

// Inverse reconstructs a plane from its residuals, predicting from already
// reconstructed neighbours. The top-left sample is taken from residuals[0]
// directly. Values are not clamped; out-of-range samples are left for the
// caller to detect.
func Inverse(residuals []int32, width, height int) []int32 {
	samples := make([]int32, width*height)
	if len(samples) == 0 {
		return samples
	}

	samples[0] = residuals[0]

	for x := 1; x < width; x++ {
		samples[x] = samples[x-1] + residuals[x]
	}

	for y := 1; y < height; y++ {
		row := y * width
		up := row - width

		samples[row] = samples[up] + residuals[row]

		for x := 1; x < width; x++ {
			a := int(samples[row+x-1])
			b := int(samples[up+x])
			c := int(samples[up+x-1])
			samples[row+x] = int32(Predict(a, b, c)) + residuals[row+x]
		}
	}

	return samples
}
