package rulekit

import (
	"github.com/tsawler/rulekit/geom"
	"github.com/tsawler/rulekit/params"
	"github.com/tsawler/rulekit/polyline"
	"github.com/tsawler/rulekit/postprocess"
	"github.com/tsawler/rulekit/raster"
	"github.com/tsawler/rulekit/scoreboard"
)

// Extractor wraps a raster and its parameters, producing segments and
// regions on demand. It mirrors the shape of the teacher's fluent
// tabula.Open(path).Text() API, but over a raster and parameters
// rather than a document file.
type Extractor struct {
	raster *raster.Raster
	params params.Parameters
	seed   int64
	seeded bool
}

// New returns an Extractor over r configured by p.
func New(r *raster.Raster, p params.Parameters) *Extractor {
	return &Extractor{raster: r, params: p}
}

// NewFromMap parses parameter values from a map before constructing
// the Extractor; see params.Parse for the expected keys and error
// behavior.
func NewFromMap(r *raster.Raster, values map[string]any) (*Extractor, error) {
	p, err := params.Parse(values)
	if err != nil {
		return nil, err
	}
	return New(r, p), nil
}

// Seed fixes the Extractor's random source for reproducible runs. It
// must be called before Segments or Regions.
func (e *Extractor) Seed(seed int64) *Extractor {
	e.seed = seed
	e.seeded = true
	return e
}

// Segments runs the scoreboard over the raster and returns every
// accepted segment, in acceptance order.
func (e *Extractor) Segments() ([]geom.Segment, error) {
	sb, err := scoreboard.New(e.raster, e.params)
	if err != nil {
		return nil, err
	}
	if e.seeded {
		sb.Seed(e.seed)
	}
	var segs []geom.Segment
	for sb.Next() {
		segs = append(segs, sb.Segment())
	}
	return segs, nil
}

// Regions runs Segments, fuses the result with postprocess.Fuse, and
// assembles polyline.Regions in reading order.
func (e *Extractor) Regions() ([]polyline.Region, error) {
	segs, err := e.Segments()
	if err != nil {
		return nil, err
	}
	fused := postprocess.Fuse(segs)
	regions := polyline.FindRegions(fused, float64(e.params.MaxGap))
	polyline.SortRegions(regions)
	return regions, nil
}

// ExtractSegments is a convenience wrapper around New(r, p).Segments().
func ExtractSegments(r *raster.Raster, p params.Parameters) ([]geom.Segment, error) {
	return New(r, p).Segments()
}

// ExtractRegions is a convenience wrapper around New(r, p).Regions().
func ExtractRegions(r *raster.Raster, p params.Parameters) ([]polyline.Region, error) {
	return New(r, p).Regions()
}

// ParameterNames returns the parameter keys params.Parse expects.
func ParameterNames() []string {
	return params.Names()
}
