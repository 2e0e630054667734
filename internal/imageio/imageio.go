// Package imageio decodes customer images and encodes output textures.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyQR is returned when a QR logo is requested for empty content.
	ErrEmptyQR = errors.New("imageio: empty QR content")

	// ErrTooManyPixels is returned by DecodeLimit for images whose
	// width×height exceeds the pixel budget.
	ErrTooManyPixels = errors.New("imageio: image exceeds pixel limit")
)

// Decode reads a PNG, JPEG, GIF, BMP or TIFF image. JPEG EXIF orientation
// is applied so phone uploads come out upright.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// DecodeLimit is Decode for untrusted input. The header is read first and
// images larger than maxPixels are rejected with ErrTooManyPixels before any
// pixel memory is allocated. maxPixels <= 0 means no limit.
func DecodeLimit(r io.Reader, maxPixels int64) (image.Image, error) {
	if maxPixels <= 0 {
		return Decode(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: read: %w", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode config: %w", err)
	}
	if n := int64(cfg.Width) * int64(cfg.Height); n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrTooManyPixels, cfg.Width, cfg.Height, maxPixels)
	}
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return fmt.Errorf("imageio: save %s: output must be .png", path)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}

// QR renders content as a size×size QR code image, for use as a logo.
func QR(content string, size int) (image.Image, error) {
	if content == "" {
		return nil, ErrEmptyQR
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("imageio: qr: %w", err)
	}
	return q.Image(size), nil
}
