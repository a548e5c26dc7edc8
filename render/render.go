// Package render draws diagnostic visualizations of an extraction
// run: a heatmap of the (ρ, θ) accumulator, and an overlay of emitted
// segments/regions atop the source raster.
//
// Grounded on banshee-data-velocity.report's
// internal/lidar/monitor/gridplotter.go, which uses the same
// gonum.org/v1/plot + plotter + vg trio to render a grid of cell
// states over time; here the grid being rendered is the Hough
// accumulator instead of a LIDAR background grid.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tsawler/rulekit/accumulator"
	"github.com/tsawler/rulekit/geom"
	"github.com/tsawler/rulekit/polyline"
	"github.com/tsawler/rulekit/raster"
)

// accGrid adapts an *accumulator.Accumulator to plotter.GridXYZ so it
// can be fed directly into plotter.NewHeatMap.
type accGrid struct {
	acc *accumulator.Accumulator
}

func (g accGrid) Dims() (c, r int) { return g.acc.Width(), g.acc.Height() }
func (g accGrid) X(c int) float64  { return float64(c) }
func (g accGrid) Y(r int) float64  { return float64(r) }
func (g accGrid) Z(c, r int) float64 {
	return float64(g.acc.Get(r, c))
}

// Heatmap renders acc as a (θ, ρ) heatmap PNG at path, sized w x h
// (in vg units, e.g. 8*vg.Inch).
func Heatmap(acc *accumulator.Accumulator, w, h vg.Length, path string) error {
	p := plot.New()
	p.Title.Text = "Hough accumulator"
	p.X.Label.Text = "theta"
	p.Y.Label.Text = "rho"

	pal := moreland.SmoothBlueRed()
	hm := plotter.NewHeatMap(accGrid{acc: acc}, pal.Palette(256))
	p.Add(hm)

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save heatmap: %w", err)
	}
	return nil
}

// Overlay renders segments and regions atop a copy of r, sized w x h,
// to path. Segments are drawn as red lines, region bounding boxes as
// green rectangles.
func Overlay(r *raster.Raster, segs []geom.Segment, regions []polyline.Region, w, h vg.Length, path string) error {
	p := plot.New()
	p.Title.Text = "rulekit extraction overlay"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Min = 0
	p.Y.Max = float64(r.Height())
	p.X.Min = 0
	p.X.Max = float64(r.Width())

	img := image.NewGray(image.Rect(0, 0, r.Width(), r.Height()))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: r.At(x, y)})
		}
	}
	p.Add(plotter.NewImage(img, 0, 0, float64(r.Width()), float64(r.Height())))

	for _, s := range segs {
		line, err := plotter.NewLine(plotter.XYs{
			{X: s.A.X, Y: float64(r.Height()) - s.A.Y},
			{X: s.B.X, Y: float64(r.Height()) - s.B.Y},
		})
		if err != nil {
			return fmt.Errorf("render: segment line: %w", err)
		}
		line.Color = color.RGBA{R: 220, A: 255}
		line.Width = vg.Points(1.2)
		p.Add(line)
	}

	for _, reg := range regions {
		top := float64(r.Height()) - reg.Y
		bottom := top - reg.H
		box, err := plotter.NewLine(plotter.XYs{
			{X: reg.X, Y: bottom},
			{X: reg.X + reg.W, Y: bottom},
			{X: reg.X + reg.W, Y: top},
			{X: reg.X, Y: top},
			{X: reg.X, Y: bottom},
		})
		if err != nil {
			return fmt.Errorf("render: region box: %w", err)
		}
		box.Color = color.RGBA{G: 160, A: 255}
		box.Width = vg.Points(1.5)
		p.Add(box)
	}

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save overlay: %w", err)
	}
	return nil
}
