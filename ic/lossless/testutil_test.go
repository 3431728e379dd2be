package lossless

import "math/rand"

// gradientPlane creates a smooth plane with some texture
func gradientPlane(width, height int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	plane := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (x*3+y*2)%256 + rng.Intn(5) - 2
			plane[y*width+x] = byte(max(0, min(255, v)))
		}
	}
	return plane
}

// noisePlane creates a plane of uniformly random samples
func noisePlane(width, height int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	plane := make([]byte, width*height)
	rng.Read(plane)
	return plane
}

func testImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Channels: [][]byte{
			gradientPlane(width, height, 1),
			gradientPlane(width, height, 2),
			noisePlane(width, height, 3),
		},
	}
}
