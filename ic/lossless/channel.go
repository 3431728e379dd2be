package lossless

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cocosip/go-interp-codec/ic/bitstream"
	"github.com/cocosip/go-interp-codec/ic/common"
	"github.com/cocosip/go-interp-codec/ic/interpolative"
)

// ChannelHeaderSize is the encoded size of a ChannelHeader
const ChannelHeaderSize = 16

// MaxSample is the largest sample value of an 8-bit plane
const MaxSample = 255

// ChannelHeader carries what the decoder needs besides the coded bits:
// the plane size and both ends of the cumulative sequence.
type ChannelHeader struct {
	Height uint16
	Width  uint16
	First  uint32 // C[0]
	Last   uint32 // C[n-1]
	Count  uint32 // n = Width*Height
}

// AppendTo appends the big-endian encoding of h to buf
func (h ChannelHeader) AppendTo(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint16(buf, h.Height)
	buf = binary.BigEndian.AppendUint16(buf, h.Width)
	buf = binary.BigEndian.AppendUint32(buf, h.First)
	buf = binary.BigEndian.AppendUint32(buf, h.Last)
	buf = binary.BigEndian.AppendUint32(buf, h.Count)
	return buf
}

// ParseChannelHeader decodes a ChannelHeader from the first 16 bytes of data
func ParseChannelHeader(data []byte) (ChannelHeader, error) {
	if len(data) < ChannelHeaderSize {
		return ChannelHeader{}, fmt.Errorf("%w: channel header needs %d bytes, have %d",
			common.ErrTruncatedHeader, ChannelHeaderSize, len(data))
	}
	return ChannelHeader{
		Height: binary.BigEndian.Uint16(data[0:]),
		Width:  binary.BigEndian.Uint16(data[2:]),
		First:  binary.BigEndian.Uint32(data[4:]),
		Last:   binary.BigEndian.Uint32(data[8:]),
		Count:  binary.BigEndian.Uint32(data[12:]),
	}, nil
}

// EncodeChannel codes one 8-bit plane: prediction, error mapping, running
// sums and interpolative coding of the sums. It returns the channel header and
// the packed payload.
func EncodeChannel(plane []byte, width, height int, origin OriginRule) (ChannelHeader, []byte, error) {
	if width <= 0 || height <= 0 || len(plane) != width*height {
		return ChannelHeader{}, nil, fmt.Errorf("%w: %dx%d plane with %d samples",
			common.ErrInvalidDimensions, width, height, len(plane))
	}
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return ChannelHeader{}, nil, fmt.Errorf("%w: dimensions %dx%d", common.ErrHeaderOverflow, width, height)
	}

	residuals := Forward(plane, width, height, origin)

	mapped := make([]uint64, len(residuals))
	for i, e := range residuals {
		mapped[i] = MapErrorValue(e)
	}

	sums, err := Cumulate(mapped)
	if err != nil {
		return ChannelHeader{}, nil, err
	}

	n := len(sums)
	first, last := sums[0], sums[n-1]
	if last > math.MaxUint32 || uint64(n) > math.MaxUint32 {
		return ChannelHeader{}, nil, fmt.Errorf("%w: C[0]=%d C[n-1]=%d n=%d",
			common.ErrHeaderOverflow, first, last, n)
	}

	w := bitstream.NewWriter()
	if err := interpolative.Encode(w, sums); err != nil {
		return ChannelHeader{}, nil, err
	}

	payload := w.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return ChannelHeader{}, nil, fmt.Errorf("%w: payload of %d bytes", common.ErrHeaderOverflow, len(payload))
	}

	header := ChannelHeader{
		Height: uint16(height),
		Width:  uint16(width),
		First:  uint32(first),
		Last:   uint32(last),
		Count:  uint32(n),
	}
	return header, payload, nil
}

// DecodeChannel reverses EncodeChannel. The returned samples are not clamped.
func DecodeChannel(h ChannelHeader, payload []byte) ([]int32, error) {
	width, height := int(h.Width), int(h.Height)
	n := int(h.Count)
	if n == 0 || n != width*height {
		return nil, fmt.Errorf("%w: %d samples declared for %dx%d channel", common.ErrFormat, n, width, height)
	}
	if h.First > h.Last || (n == 1 && h.First != h.Last) {
		return nil, fmt.Errorf("%w: bounds C[0]=%d C[n-1]=%d", common.ErrCorruptSequence, h.First, h.Last)
	}

	sums := make([]uint64, n)
	sums[0] = uint64(h.First)
	sums[n-1] = uint64(h.Last)

	if err := interpolative.Decode(bitstream.NewReader(payload), sums); err != nil {
		return nil, err
	}

	mapped, err := Difference(sums)
	if err != nil {
		return nil, err
	}

	residuals := make([]int32, n)
	for i, m := range mapped {
		e := UnmapErrorValue(m)
		// 8-bit samples never differ from a prediction by more than MaxSample
		if e < -MaxSample || e > MaxSample {
			return nil, fmt.Errorf("%w: residual %d at index %d", common.ErrCorruptSequence, e, i)
		}
		residuals[i] = int32(e)
	}

	return Inverse(residuals, width, height), nil
}
