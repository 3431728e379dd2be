package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cocosip/go-interp-codec/ic/lossless"
	"github.com/xfmoulet/qoi"
)

// loadImage reads any registered image format into three 8-bit planes.
// Alpha is dropped.
func loadImage(path string) (*lossless.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	img := &lossless.Image{
		Width:    width,
		Height:   height,
		Channels: make([][]byte, lossless.Components),
	}
	for c := range img.Channels {
		img.Channels[c] = make([]byte, width*height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := y*width + x
			img.Channels[0][i] = rgba.R
			img.Channels[1][i] = rgba.G
			img.Channels[2][i] = rgba.B
		}
	}

	return img, format, nil
}

// saveImage writes planes as PNG, or QOI when the extension says so
func saveImage(img *lossless.Image, path string) error {
	if len(img.Channels) != lossless.Components {
		return fmt.Errorf("cannot save %d-channel image", len(img.Channels))
	}

	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		out.Pix[i*4+0] = img.Channels[0][i]
		out.Pix[i*4+1] = img.Channels[1][i]
		out.Pix[i*4+2] = img.Channels[2][i]
		out.Pix[i*4+3] = 0xFF
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".qoi":
		err = qoi.Encode(f, out)
	default:
		err = png.Encode(f, out)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
