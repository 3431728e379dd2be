package lossless

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cocosip/go-interp-codec/ic/common"
	"golang.org/x/sync/errgroup"
)

const (
	// ImageHeaderSize is the size of the overall header: height, width, channel count
	ImageHeaderSize = 5

	// PayloadLengthSize is the size of the length prefix before each payload
	PayloadLengthSize = 4

	// Components is the number of channels the encoder accepts
	Components = 3
)

// Image is a set of equally sized 8-bit planes
type Image struct {
	Width    int
	Height   int
	Channels [][]byte // row-major planes, Width*Height samples each
}

// channelBlock is one coded channel
type channelBlock struct {
	header  ChannelHeader
	payload []byte
}

// Encoder represents a container encoder
type Encoder struct {
	width  int
	height int
	cfg    config
}

// NewEncoder creates a new encoder for images of the given size
func NewEncoder(width, height int, opts ...Option) *Encoder {
	return &Encoder{
		width:  width,
		height: height,
		cfg:    newConfig(opts),
	}
}

// Encode compresses a three-channel image into the container format
func Encode(img *Image, opts ...Option) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", common.ErrValidation)
	}
	enc := NewEncoder(img.Width, img.Height, opts...)
	return enc.encode(img.Channels)
}

// EncodeInterleaved compresses sample-interleaved pixel data (RGBRGB...)
func EncodeInterleaved(pixelData []byte, width, height, components int, opts ...Option) ([]byte, error) {
	if components != Components {
		return nil, fmt.Errorf("%w: %d (must be %d)", common.ErrInvalidComponents, components, Components)
	}
	if width <= 0 || height <= 0 || len(pixelData) != width*height*components {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d",
			common.ErrInvalidDimensions, len(pixelData), width, height, components)
	}

	enc := NewEncoder(width, height, opts...)
	return enc.encode(Deinterleave(pixelData, width*height, components))
}

// encode performs the actual encoding
func (enc *Encoder) encode(planes [][]byte) ([]byte, error) {
	if err := enc.validate(planes); err != nil {
		return nil, err
	}

	blocks := make([]channelBlock, len(planes))
	encodeOne := func(i int) error {
		h, payload, err := EncodeChannel(planes[i], enc.width, enc.height, enc.cfg.origin)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		blocks[i] = channelBlock{header: h, payload: payload}
		return nil
	}

	if enc.cfg.concurrent {
		var g errgroup.Group
		for i := range planes {
			g.Go(func() error { return encodeOne(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range planes {
			if err := encodeOne(i); err != nil {
				return nil, err
			}
		}
	}

	return enc.writeContainer(blocks), nil
}

// validate checks channel count and plane sizes
func (enc *Encoder) validate(planes [][]byte) error {
	if len(planes) != Components {
		return fmt.Errorf("%w: %d (must be %d)", common.ErrInvalidComponents, len(planes), Components)
	}
	if enc.width <= 0 || enc.height <= 0 {
		return fmt.Errorf("%w: %dx%d", common.ErrInvalidDimensions, enc.width, enc.height)
	}
	if enc.width > math.MaxUint16 || enc.height > math.MaxUint16 {
		return fmt.Errorf("%w: dimensions %dx%d", common.ErrHeaderOverflow, enc.width, enc.height)
	}
	for i, p := range planes {
		if len(p) != enc.width*enc.height {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				common.ErrInvalidDimensions, i, len(p), enc.width*enc.height)
		}
	}
	return nil
}

// writeContainer lays out the overall header and every channel record
func (enc *Encoder) writeContainer(blocks []channelBlock) []byte {
	size := ImageHeaderSize
	for _, b := range blocks {
		size += ChannelHeaderSize + PayloadLengthSize + len(b.payload)
	}

	out := make([]byte, 0, size)
	out = binary.BigEndian.AppendUint16(out, uint16(enc.height))
	out = binary.BigEndian.AppendUint16(out, uint16(enc.width))
	out = append(out, byte(len(blocks)))

	for _, b := range blocks {
		out = b.header.AppendTo(out)
		out = binary.BigEndian.AppendUint32(out, uint32(len(b.payload)))
		out = append(out, b.payload...)
	}

	return out
}

// Deinterleave splits sample-interleaved data into one plane per component
func Deinterleave(pixelData []byte, samples, components int) [][]byte {
	planes := make([][]byte, components)
	for c := range planes {
		plane := make([]byte, samples)
		for i := range plane {
			plane[i] = pixelData[i*components+c]
		}
		planes[c] = plane
	}
	return planes
}

// Interleave merges planes into sample-interleaved data
func Interleave(planes [][]byte) []byte {
	if len(planes) == 0 {
		return nil
	}
	components := len(planes)
	samples := len(planes[0])
	out := make([]byte, samples*components)
	for c, plane := range planes {
		for i, v := range plane {
			out[i*components+c] = v
		}
	}
	return out
}
