package lossless

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-interp-codec/ic/common"
	"golang.org/x/sync/errgroup"
)

// Info describes a container without decoding its payloads
type Info struct {
	Width          int
	Height         int
	Channels       int
	ChannelHeaders []ChannelHeader
	PayloadSizes   []int
}

// DecodeReport lists anomalies found while decoding
type DecodeReport struct {
	// ClampedSamples counts, per channel, reconstructed samples that fell
	// outside [0, 255] and were clamped. Nonzero counts mean the data is
	// corrupt even though decoding succeeded.
	ClampedSamples []int
}

// Clamped reports whether any sample was clamped
func (r *DecodeReport) Clamped() bool {
	for _, n := range r.ClampedSamples {
		if n > 0 {
			return true
		}
	}
	return false
}

// Decoder represents a container decoder
type Decoder struct {
	cfg config
}

// NewDecoder creates a new decoder
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{cfg: newConfig(opts)}
}

// Decode decompresses a container into its planes
func Decode(data []byte, opts ...Option) (*Image, error) {
	img, _, err := NewDecoder(opts...).decode(data)
	return img, err
}

// DecodeWithReport decompresses a container and reports clamped samples
func DecodeWithReport(data []byte, opts ...Option) (*Image, *DecodeReport, error) {
	return NewDecoder(opts...).decode(data)
}

// DecodeInterleaved decompresses a container into sample-interleaved pixel data
// Returns: pixelData, width, height, components, error
func DecodeInterleaved(data []byte, opts ...Option) ([]byte, int, int, int, error) {
	img, err := Decode(data, opts...)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return Interleave(img.Channels), img.Width, img.Height, len(img.Channels), nil
}

// ReadInfo parses the headers of a container
func ReadInfo(data []byte) (*Info, error) {
	info, _, err := parseContainer(data)
	return info, err
}

// decode performs the actual decoding
func (dec *Decoder) decode(data []byte) (*Image, *DecodeReport, error) {
	info, payloads, err := parseContainer(data)
	if err != nil {
		return nil, nil, err
	}

	img := &Image{
		Width:    info.Width,
		Height:   info.Height,
		Channels: make([][]byte, info.Channels),
	}
	report := &DecodeReport{ClampedSamples: make([]int, info.Channels)}

	decodeOne := func(i int) error {
		samples, err := DecodeChannel(info.ChannelHeaders[i], payloads[i])
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		plane, clamped := clampPlane(samples)
		img.Channels[i] = plane
		report.ClampedSamples[i] = clamped
		return nil
	}

	if dec.cfg.concurrent {
		var g errgroup.Group
		for i := range payloads {
			g.Go(func() error { return decodeOne(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range payloads {
			if err := decodeOne(i); err != nil {
				return nil, nil, err
			}
		}
	}

	return img, report, nil
}

// parseContainer reads every header and slices out the payloads
func parseContainer(data []byte) (*Info, [][]byte, error) {
	if len(data) < ImageHeaderSize {
		return nil, nil, fmt.Errorf("%w: image header needs %d bytes, have %d",
			common.ErrTruncatedHeader, ImageHeaderSize, len(data))
	}

	height := int(binary.BigEndian.Uint16(data[0:]))
	width := int(binary.BigEndian.Uint16(data[2:]))
	channels := int(data[4])
	if width == 0 || height == 0 || channels == 0 {
		return nil, nil, fmt.Errorf("%w: empty image %dx%d with %d channels", common.ErrFormat, width, height, channels)
	}

	info := &Info{
		Width:          width,
		Height:         height,
		Channels:       channels,
		ChannelHeaders: make([]ChannelHeader, channels),
		PayloadSizes:   make([]int, channels),
	}
	payloads := make([][]byte, channels)

	pos := ImageHeaderSize
	for i := 0; i < channels; i++ {
		h, err := ParseChannelHeader(data[pos:])
		if err != nil {
			return nil, nil, fmt.Errorf("channel %d: %w", i, err)
		}
		pos += ChannelHeaderSize

		if int(h.Width) != width || int(h.Height) != height {
			return nil, nil, fmt.Errorf("%w: channel %d is %dx%d, image is %dx%d",
				common.ErrDimensionMismatch, i, h.Width, h.Height, width, height)
		}

		if len(data)-pos < PayloadLengthSize {
			return nil, nil, fmt.Errorf("%w: channel %d payload length", common.ErrTruncatedHeader, i)
		}
		length := int(binary.BigEndian.Uint32(data[pos:]))
		pos += PayloadLengthSize

		if len(data)-pos < length {
			return nil, nil, fmt.Errorf("%w: channel %d declares %d bytes, have %d",
				common.ErrTruncatedPayload, i, length, len(data)-pos)
		}
		payloads[i] = data[pos : pos+length]
		pos += length

		info.ChannelHeaders[i] = h
		info.PayloadSizes[i] = length
	}

	return info, payloads, nil
}

// clampPlane converts reconstructed samples to bytes, clamping into [0, 255].
// It returns the number of samples that needed clamping.
func clampPlane(samples []int32) ([]byte, int) {
	plane := make([]byte, len(samples))
	clamped := 0
	for i, s := range samples {
		if s < 0 || s > MaxSample {
			clamped++
		}
		plane[i] = byte(common.Clamp(int(s), 0, MaxSample))
	}
	return plane, clamped
}
