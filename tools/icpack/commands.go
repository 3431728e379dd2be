package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cocosip/go-interp-codec/ic/lossless"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runEncode(inPath, outPath string) error {
	p := message.NewPrinter(language.English) // For commas between thousands

	img, format, err := loadImage(inPath)
	if err != nil {
		return err
	}
	p.Printf("Image: %s, %dx%d, %d channels\n", format, img.Width, img.Height, len(img.Channels))

	start := time.Now()
	encoded, err := lossless.Encode(img)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}

	stat, err := os.Stat(inPath)
	if err != nil {
		return err
	}
	raw := img.Width * img.Height * len(img.Channels)

	p.Printf("Compression time: %v\n", elapsed.Round(time.Millisecond))
	p.Printf("Original file size: %d bytes\n", stat.Size())
	p.Printf("Raw RGB size: %d bytes\n", raw)
	p.Printf("Compressed size: %d bytes\n", len(encoded))
	p.Printf("Compression ratio (file): %.2f\n", float64(stat.Size())/float64(len(encoded)))
	p.Printf("Compression ratio (raw): %.2f\n", float64(raw)/float64(len(encoded)))

	baseline, err := zstdSize(lossless.Interleave(img.Channels))
	if err != nil {
		return err
	}
	p.Printf("zstd baseline (raw RGB): %d bytes (%.2f)\n", baseline, float64(raw)/float64(baseline))
	return nil
}

func runDecode(inPath, outPath string) error {
	p := message.NewPrinter(language.English)

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	img, report, err := lossless.DecodeWithReport(data)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if report.Clamped() {
		fmt.Fprintf(os.Stderr, "warning: clamped out-of-range samples per channel %v; input is likely corrupt\n",
			report.ClampedSamples)
	}

	if err := saveImage(img, outPath); err != nil {
		return err
	}

	p.Printf("Decompression time: %v\n", elapsed.Round(time.Millisecond))
	p.Printf("Decoded %s -> %s (%dx%d)\n", inPath, outPath, img.Width, img.Height)
	return nil
}

func runInfo(inPath string) error {
	p := message.NewPrinter(language.English)

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	info, err := lossless.ReadInfo(data)
	if err != nil {
		return err
	}

	p.Printf("Image: %dx%d, %d channels, %d bytes\n", info.Width, info.Height, info.Channels, len(data))
	for i, h := range info.ChannelHeaders {
		p.Printf("  channel %d: n=%d C[0]=%d C[n-1]=%d payload=%d bytes (%.3f bits/sample)\n",
			i, h.Count, h.First, h.Last, info.PayloadSizes[i],
			float64(info.PayloadSizes[i]*8)/float64(h.Count))
	}
	return nil
}

// zstdSize returns the zstd-compressed size of data, for comparison only
func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}
