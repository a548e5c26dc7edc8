//go:build !ocr

// Package regionocr provides per-region OCR labeling of extracted
// polyline.Regions.
//
// This is the stub implementation used when the "ocr" build tag is
// not set. All functions return ErrOCRNotEnabled. To enable OCR,
// rebuild with:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package regionocr

import (
	"errors"

	"github.com/tsawler/rulekit/polyline"
	"github.com/tsawler/rulekit/raster"
)

// ErrOCRNotEnabled is returned when regionocr functions are called but
// OCR support was not compiled in. Rebuild with -tags ocr to enable.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeRegion returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeRegion(r *raster.Raster, region polyline.Region) (string, error) {
	return "", ErrOCRNotEnabled
}
