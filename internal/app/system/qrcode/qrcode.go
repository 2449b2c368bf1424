// Package qrcode renders QR codes as PNG images.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultSize is the edge length in pixels used when size <= 0.
const DefaultSize = 256

// ErrEmpty is returned when there is nothing to encode.
var ErrEmpty = errors.New("qrcode: empty content")

// PNG encodes content as a square QR code of the given pixel size.
func PNG(content string, size int) ([]byte, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmpty
	}
	if size <= 0 {
		size = DefaultSize
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyURL returns the public application URL for base (e.g.
// https://careers.example.com), which must not be blank.
func ApplyURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + "/apply"
}
