package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrInvalidScale is returned for a scale factor below 1.
	ErrInvalidScale = errors.New("image: invalid scale")
)

// jpegQuality is used for .jpg output.
const jpegQuality = 95

// FormatForPath returns the encoder name for a file extension: "png",
// "bmp" or "jpeg".
func FormatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w using the named encoder.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img to path, choosing the encoder by extension.
func Save(path string, img image.Image) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// keeping texel edges sharp. A factor of 1 returns img unchanged.
func Scale(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return img, nil
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
