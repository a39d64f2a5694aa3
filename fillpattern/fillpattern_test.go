package fillpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/slicegeom/geom"
)

func square(x0, y0, size geom.Unit) geom.Polygon {
	return geom.Polygon{
		geom.Pt(x0, y0),
		geom.Pt(x0+size, y0),
		geom.Pt(x0+size, y0+size),
		geom.Pt(x0, y0+size),
	}
}

func TestRectilinearFillProducesLinesInsideSquare(t *testing.T) {
	ex := geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}
	r := Rectilinear{AngleDegrees: 0}

	lines := r.Fill(ex, 1.0, geom.Scale(2))
	assert.NotEmpty(t, lines, "expected at least one fill line in a 20x20mm square")

	for _, l := range lines {
		assert.Len(t, l, 2, "each emitted line is collapsed to two endpoints")
		for _, pt := range l {
			assert.True(t, ex.Contour.EnclosesPoint(pt) || onSquareBoundary(pt, ex.Contour),
				"fill point %v should lie within or on the square boundary", pt)
		}
	}
}

func TestRectilinearFillDensityZeroIsEmpty(t *testing.T) {
	ex := geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}
	r := Rectilinear{AngleDegrees: 0}
	assert.Nil(t, r.Fill(ex, 0, geom.Scale(2)))
}

func TestRectilinearFillZeroSpacingIsEmpty(t *testing.T) {
	ex := geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}
	r := Rectilinear{AngleDegrees: 0}
	assert.Nil(t, r.Fill(ex, 1, 0))
}

func TestRectilinearFillDenserAtHigherDensity(t *testing.T) {
	ex := geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}
	r := Rectilinear{AngleDegrees: 0}

	sparse := r.Fill(ex, 0.2, geom.Scale(2))
	dense := r.Fill(ex, 1.0, geom.Scale(2))
	assert.Greater(t, len(dense), len(sparse), "higher density should produce more fill lines")
}

func onSquareBoundary(pt geom.Point, p geom.Polygon) bool {
	min, max := p.BoundingBox()
	const eps = geom.Unit(1000) // generous, sample spacing introduces a little slack
	return (pt.X >= min.X-eps && pt.X <= max.X+eps) && (pt.Y >= min.Y-eps && pt.Y <= max.Y+eps)
}
