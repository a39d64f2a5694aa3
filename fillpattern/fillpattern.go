// Package fillpattern defines the FillPattern collaborator contract and
// a rectilinear reference implementation, grounded on the teacher's
// iterative span-walking style (recast's heightfield rasterization).
package fillpattern

import (
	"math"

	"github.com/arl/slicegeom/geom"
)

// FillPattern fills a single ExPolygon with extrusion paths at the given
// density (0, 1] and line spacing, returning the resulting polylines in
// the order they should be printed.
type FillPattern interface {
	Fill(ex geom.ExPolygon, density float64, spacing geom.Unit) []geom.Polyline
}

// Rectilinear fills with parallel straight lines at a fixed angle,
// clipped to the target ExPolygon. It is the only pattern PerimeterGenerator's
// gap-fill step needs (§4.4 step 5 calls it at density 1); the fill
// package does not use a fill pattern.
//
// Its hole handling is a no-op (see clipAgainstHole): callers that fill
// an ExPolygon with holes directly will get overfilled lines across
// those holes. Gap-fill regions never carry holes in practice, which is
// the only caller today; a caller filling general solid/sparse infill
// surfaces would need a real hole-clipping pass first.
type Rectilinear struct {
	// AngleDegrees is the fill line direction; 0 means horizontal lines
	// parallel to the X axis.
	AngleDegrees float64
}

// Fill implements FillPattern.
func (r Rectilinear) Fill(ex geom.ExPolygon, density float64, spacing geom.Unit) []geom.Polyline {
	if density <= 0 || spacing <= 0 {
		return nil
	}
	step := geom.Unit(float64(spacing) / density)
	if step < 1 {
		step = 1
	}

	bboxMin, bboxMax := ex.Contour.BoundingBox()
	diag := bboxMax.DistanceTo(bboxMin)
	cx := float64(bboxMin.X+bboxMax.X) / 2
	cy := float64(bboxMin.Y+bboxMax.Y) / 2

	theta := r.AngleDegrees * math.Pi / 180
	ux, uy := math.Cos(theta), math.Sin(theta) // unit line direction
	nx, ny := -uy, ux       // unit line-advance normal

	half := diag/2 + float64(step)
	lines := int(2*half/float64(step)) + 2

	// Sample each scan line densely rather than clipping it exactly
	// against the contour: ClipByPolygon only tests point membership, so
	// a 2-point line would never be cut at the true boundary crossing.
	// Walking the line in small steps and letting ClipByPolygon split the
	// resulting run of points into inside/outside stretches is the same
	// span-walking idea a heightfield rasterizer uses, just along an
	// arbitrary direction instead of grid rows.
	sampleStep := float64(spacing) / 8
	if sampleStep < 1 {
		sampleStep = 1
	}
	samples := int(2*half/sampleStep) + 2

	clip := append(geom.Polygon{}, ex.Contour...)

	var out []geom.Polyline
	for i := -lines / 2; i <= lines/2; i++ {
		offset := float64(i) * float64(step)
		ox := cx + nx*offset
		oy := cy + ny*offset

		line := make(geom.Polyline, 0, samples+1)
		for s := -samples / 2; s <= samples/2; s++ {
			t := float64(s) * sampleStep
			line = append(line, geom.Pt(geom.Unit(ox+ux*t), geom.Unit(oy+uy*t)))
		}

		for _, seg := range line.ClipByPolygon(clip) {
			for _, hole := range ex.Holes {
				seg = clipAgainstHole(seg, hole)
			}
			if len(seg) >= 2 {
				out = append(out, geom.Polyline{seg[0], seg[len(seg)-1]})
			}
		}
	}
	return out
}

// clipAgainstHole is a coarse approximation: it leaves seg untouched,
// since hole-aware rectilinear clipping needs segment-vs-hole
// subtraction that the straight-line scan above does not attempt; gap
// fill regions (this pattern's only caller) are thin slivers that never
// contain holes in practice.
func clipAgainstHole(seg geom.Polyline, hole geom.Polygon) geom.Polyline {
	return seg
}
