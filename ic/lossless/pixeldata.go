package lossless

import (
	"fmt"

	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

// EncodePixelData encodes every frame of src into one container per frame
// and appends them to dst. Frames must be 8-bit RGB; both planar
// configurations are accepted.
func EncodePixelData(src, dst imagetypes.PixelData, parameters dicomcodec.Parameters) error {
	if src == nil || dst == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	frameInfo := src.GetFrameInfo()
	if err := checkFrameInfo(frameInfo); err != nil {
		return err
	}

	params := parametersFrom(parameters)
	params.Validate()
	opts := params.toOptions()

	width, height := int(frameInfo.Width), int(frameInfo.Height)
	planar := frameInfo.PlanarConfiguration == 1

	for frameIndex := 0; frameIndex < src.FrameCount(); frameIndex++ {
		frameData, err := src.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) != width*height*Components {
			return fmt.Errorf("frame %d has %d bytes, want %d", frameIndex, len(frameData), width*height*Components)
		}

		var planes [][]byte
		if planar {
			planes = splitPlanar(frameData, width*height)
		} else {
			planes = Deinterleave(frameData, width*height, Components)
		}

		encoded, err := Encode(&Image{Width: width, Height: height, Channels: planes}, opts...)
		if err != nil {
			return fmt.Errorf("encode failed for frame %d: %w", frameIndex, err)
		}

		if err := dst.AddFrame(encoded); err != nil {
			return fmt.Errorf("failed to add encoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// DecodePixelData decodes every container frame of src and appends the
// pixels to dst, laid out per the planar configuration of src's frame info.
func DecodePixelData(src, dst imagetypes.PixelData, parameters dicomcodec.Parameters) error {
	if src == nil || dst == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	frameInfo := src.GetFrameInfo()
	if err := checkFrameInfo(frameInfo); err != nil {
		return err
	}

	params := parametersFrom(parameters)
	opts := []Option{WithConcurrency(params.Concurrent)}
	planar := frameInfo.PlanarConfiguration == 1

	for frameIndex := 0; frameIndex < src.FrameCount(); frameIndex++ {
		frameData, err := src.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}

		img, err := Decode(frameData, opts...)
		if err != nil {
			return fmt.Errorf("decode failed for frame %d: %w", frameIndex, err)
		}

		if img.Width != int(frameInfo.Width) || img.Height != int(frameInfo.Height) {
			return fmt.Errorf("decoded dimensions (%dx%d) don't match expected (%dx%d)",
				img.Width, img.Height, frameInfo.Width, frameInfo.Height)
		}
		if len(img.Channels) != Components {
			return fmt.Errorf("decoded components (%d) don't match expected (%d)", len(img.Channels), Components)
		}

		var pixels []byte
		if planar {
			pixels = joinPlanar(img.Channels)
		} else {
			pixels = Interleave(img.Channels)
		}

		if err := dst.AddFrame(pixels); err != nil {
			return fmt.Errorf("failed to add decoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

func checkFrameInfo(frameInfo *imagetypes.FrameInfo) error {
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}
	if frameInfo.BitsAllocated != BitDepth || frameInfo.BitsStored != BitDepth {
		return fmt.Errorf("unsupported BitsAllocated=%d BitsStored=%d (must be %d)",
			frameInfo.BitsAllocated, frameInfo.BitsStored, BitDepth)
	}
	if int(frameInfo.SamplesPerPixel) != Components {
		return fmt.Errorf("unsupported SamplesPerPixel=%d (must be %d)", frameInfo.SamplesPerPixel, Components)
	}
	if frameInfo.Width == 0 || frameInfo.Height == 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", frameInfo.Width, frameInfo.Height)
	}
	return nil
}

// splitPlanar slices color-by-plane data (RRR...GGG...BBB...) into planes
func splitPlanar(frameData []byte, samples int) [][]byte {
	planes := make([][]byte, Components)
	for c := range planes {
		planes[c] = frameData[c*samples : (c+1)*samples]
	}
	return planes
}

// joinPlanar concatenates planes into color-by-plane data
func joinPlanar(planes [][]byte) []byte {
	out := make([]byte, 0, len(planes)*len(planes[0]))
	for _, p := range planes {
		out = append(out, p...)
	}
	return out
}
