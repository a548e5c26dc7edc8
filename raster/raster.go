// Package raster defines the read-only 8-bit single-channel image type
// that scoreboard, statusgrid, and rasterio all build on.
//
// It plays the role of the original's buffer_view<uint8_t, 2> — a
// width/height/row-stride view over a flat byte buffer — but, per
// spec.md §1's non-goals, does no decoding, color conversion, or
// filtering itself; that belongs to the rasterio package.
package raster

import "fmt"

// Threshold is the pixel value at or above which a pixel is considered
// foreground (a candidate vote source) by statusgrid.Init.
const Threshold = 128

// Raster is an immutable view over an 8-bit grayscale image buffer.
// Row y occupies data[y*Stride : y*Stride+Width]; Stride may exceed
// Width to accommodate padded source buffers.
type Raster struct {
	data   []byte
	width  int
	height int
	stride int
}

// New validates and wraps data as a Raster. It does not copy data;
// callers must not mutate the slice afterward.
func New(data []byte, width, height, stride int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("raster: stride %d smaller than width %d", stride, width)
	}
	if need := stride*(height-1) + width; len(data) < need {
		return nil, fmt.Errorf("raster: buffer too small: have %d bytes, need %d", len(data), need)
	}
	return &Raster{data: data, width: width, height: height, stride: stride}, nil
}

// Width returns the image width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the image height in pixels.
func (r *Raster) Height() int { return r.height }

// At returns the pixel value at (x, y). It panics if (x, y) is out of
// bounds; callers iterating the full image should bound their loops by
// Width/Height rather than checking At's return for validity.
func (r *Raster) At(x, y int) uint8 {
	return r.data[y*r.stride+x]
}
