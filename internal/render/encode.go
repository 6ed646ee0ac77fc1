package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// CompressionLevel maps a CLI-friendly name to a png.CompressionLevel.
func CompressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	default:
		return 0, fmt.Errorf("invalid png compression %q: must be default, speed, best or none", name)
	}
}

// EncodePNG encodes img with the named compression level.
func EncodePNG(img image.Image, compression string) ([]byte, error) {
	level, err := CompressionLevel(compression)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and writes it to path.
func WritePNG(path string, img image.Image, compression string) error {
	data, err := EncodePNG(img, compression)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
