package codec

// Codec is the universal interface for all image codecs
type Codec interface {
	// Encode encodes pixel data
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes compressed data
	Decode(data []byte) (*DecodeResult, error)

	// UID returns the unique identifier of the coded format
	UID() string

	// Name returns a short human-readable name
	Name() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData  []byte  // Sample-interleaved pixel data
	Width      int     // Image width
	Height     int     // Image height
	Components int     // Number of color components
	BitDepth   int     // Bits per sample
	Options    Options // Codec-specific options, may be nil
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData  []byte // Decoded pixel data, sample-interleaved
	Width      int    // Image width
	Height     int    // Image height
	Components int    // Number of color components
	BitDepth   int    // Bits per sample
}

// BaseOptions provides common options for all codecs
type BaseOptions struct {
	// Quality factor for lossy codecs (1-100, higher is better)
	// Not used for lossless codecs
	Quality int

	// NearLossless error bound; 0 = lossless
	NearLossless int
}

// Validate validates base options
func (o *BaseOptions) Validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return ErrInvalidQuality
	}
	if o.NearLossless < 0 {
		return ErrInvalidParameter
	}
	return nil
}
