package lossless

import (
	"fmt"

	"github.com/cocosip/go-interp-codec/codec"
)

const (
	// CodecName is the registry name of the codec
	CodecName = "ic-lossless"

	// CodecUID identifies the container format
	CodecUID = "application/x-ic-lossless"

	// BitDepth is the only supported sample precision
	BitDepth = 8
)

var _ codec.Codec = (*LosslessCodec)(nil)

// Options are the codec-specific options accepted in codec.EncodeParams
type Options struct {
	codec.BaseOptions

	// Origin selects the top-left prediction rule
	Origin OriginRule

	// Sequential disables per-channel concurrency
	Sequential bool
}

// Validate checks if the options are valid
func (o *Options) Validate() error {
	if err := o.BaseOptions.Validate(); err != nil {
		return err
	}
	if o.NearLossless != 0 {
		return fmt.Errorf("%w: near-lossless %d not supported", codec.ErrInvalidParameter, o.NearLossless)
	}
	if o.Origin != OriginZero && o.Origin != OriginSelf {
		return fmt.Errorf("%w: origin rule %d", codec.ErrInvalidParameter, o.Origin)
	}
	return nil
}

func (o *Options) toOptions() []Option {
	return []Option{
		WithOriginRule(o.Origin),
		WithConcurrency(!o.Sequential),
	}
}

// LosslessCodec implements the codec.Codec interface for the interpolative
// lossless container
type LosslessCodec struct{}

// NewLosslessCodec creates a new codec
func NewLosslessCodec() *LosslessCodec {
	return &LosslessCodec{}
}

// Encode encodes sample-interleaved RGB data
func (c *LosslessCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.BitDepth != 0 && params.BitDepth != BitDepth {
		return nil, fmt.Errorf("%w: bit depth %d (must be %d)", codec.ErrUnsupportedFormat, params.BitDepth, BitDepth)
	}

	var opts []Option
	if params.Options != nil {
		if err := params.Options.Validate(); err != nil {
			return nil, err
		}
		o, ok := params.Options.(*Options)
		if !ok {
			return nil, fmt.Errorf("%w: options of type %T", codec.ErrInvalidParameter, params.Options)
		}
		opts = o.toOptions()
	}

	return EncodeInterleaved(params.PixelData, params.Width, params.Height, params.Components, opts...)
}

// Decode decodes a container into sample-interleaved data
func (c *LosslessCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixelData, width, height, components, err := DecodeInterleaved(data)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: components,
		BitDepth:   BitDepth,
	}, nil
}

// UID returns the format identifier
func (c *LosslessCodec) UID() string {
	return CodecUID
}

// Name returns the registry name
func (c *LosslessCodec) Name() string {
	return CodecName
}

// RegisterLosslessCodec registers the codec in the global registry
func RegisterLosslessCodec() {
	codec.Register(NewLosslessCodec())
}

func init() {
	RegisterLosslessCodec()
}
