package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	webpQuality   = 80
)

// IsImageMime reports whether the upload should go through the webp
// re-encode path. Non-image documents (PDFs, scans already compressed)
// are stored as-is.
func IsImageMime(mime string) bool {
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}

// EncodeWebP decodes an uploaded JPEG/PNG, downscales anything wider than
// maxImageWidth and re-encodes as lossy webp. Returns the webp bytes.
func EncodeWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	src = downscale(src, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func downscale(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxW {
		return src
	}

	h := b.Dy() * maxW / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxW, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
