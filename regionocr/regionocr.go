//go:build ocr

// Package regionocr runs Tesseract OCR over the raster crop bounded by
// each emitted polyline.Region, producing a best-effort text label per
// region — supplementing the printed-form/table-ruling use case named
// in spec.md §1.
//
// Adapted from the teacher's ocr/ocr.go + ocr/ocr_stub.go pair: same
// gosseract client shape and build-tag split, retargeted from
// whole-page OCR to per-region crop OCR. Requires Tesseract; rebuild
// with -tags ocr. On macOS: brew install tesseract. On Ubuntu/Debian:
// apt-get install tesseract-ocr.
package regionocr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/rulekit/polyline"
	"github.com/tsawler/rulekit/raster"
)

// Client wraps Tesseract for per-region OCR.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. Close it when done to release
// Tesseract resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) used for recognition, e.g. "eng"
// or "eng+fra".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeRegion crops r to region and runs OCR over the crop,
// returning the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeRegion(r *raster.Raster, region polyline.Region) (string, error) {
	crop := cropToPNG(r, region)
	if err := c.client.SetImageFromBytes(crop); err != nil {
		return "", fmt.Errorf("regionocr: failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("regionocr: OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func cropToPNG(r *raster.Raster, region polyline.Region) []byte {
	x0, y0 := int(region.X), int(region.Y)
	w, h := int(region.W), int(region.H)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x0+x, y0+y
			if sx < 0 || sy < 0 || sx >= r.Width() || sy >= r.Height() {
				continue
			}
			img.SetGray(x, y, color.Gray{Y: r.At(sx, sy)})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
