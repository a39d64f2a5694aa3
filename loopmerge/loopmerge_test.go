package loopmerge

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

func TestMergeEmptyInputReturnsNil(t *testing.T) {
	assert.Nil(t, Merge(nil, nil))
}

func TestMergeDropsDegenerateLoops(t *testing.T) {
	degenerate := geom.Polygon{geom.Pt(0, 0), geom.Pt(0, 0)}
	out := Merge(nil, []geom.Polygon{degenerate})
	assert.Nil(t, out)
}

func TestMergeSingleOuterLoop(t *testing.T) {
	out := Merge(nil, []geom.Polygon{square(0, 0, geom.Scale(10))})
	assert.Len(t, out, 1)
	assert.True(t, out[0].ExPolygon.Contour.IsCounterClockwise())
	assert.Empty(t, out[0].ExPolygon.Holes)
}

func TestMergeOuterWithHole(t *testing.T) {
	outer := square(0, 0, geom.Scale(20))
	hole := square(geom.Scale(5), geom.Scale(5), geom.Scale(5)).Reversed() // CW hole

	out := Merge(nil, []geom.Polygon{outer, hole})
	assert.Len(t, out, 1)
	assert.Len(t, out[0].ExPolygon.Holes, 1)
}

func TestMergeIsOrderIndependent(t *testing.T) {
	outer := square(0, 0, geom.Scale(20))
	hole := square(geom.Scale(5), geom.Scale(5), geom.Scale(5)).Reversed()

	a := Merge(nil, []geom.Polygon{outer, hole})
	b := Merge(nil, []geom.Polygon{hole, outer})
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
	assert.Len(t, b[0].ExPolygon.Holes, 1)
}
