package surfacebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/slicegeom/flow"
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

func TestBuildEmptyInputYieldsEmptyResult(t *testing.T) {
	f := flow.New(0.4, 0.2, flow.RolePerimeter)
	res := Build(nil, nil, f)
	assert.Empty(t, res.Slices)
	assert.Empty(t, res.ThinWalls)
}

func TestBuildProducesOneSliceForASimpleSquare(t *testing.T) {
	f := flow.New(0.4, 0.2, flow.RolePerimeter)
	loops := []geom.Polygon{square(0, 0, geom.Scale(20))}

	res := Build(nil, loops, f)
	assert.Len(t, res.Slices, 1)
	assert.True(t, res.Slices[0].ExPolygon.Contour.IsCounterClockwise())
	// the shrink-then-grow pass should approximately preserve area for a
	// feature much larger than the bead width.
	want := square(0, 0, geom.Scale(20)).Area()
	got := res.Slices[0].ExPolygon.Area()
	assert.InDelta(t, want, got, want*0.05)
}

func TestBuildDetectsThinWallOnNarrowFeature(t *testing.T) {
	f := flow.New(0.4, 0.2, flow.RolePerimeter)
	// a sliver narrower than one bead width: 20mm long, 0.1mm wide.
	sliver := geom.Polygon{
		geom.Pt(geom.Scale(0), geom.Scale(0)),
		geom.Pt(geom.Scale(20), geom.Scale(0)),
		geom.Pt(geom.Scale(20), geom.Scale(0.1)),
		geom.Pt(geom.Scale(0), geom.Scale(0.1)),
	}
	res := Build(nil, []geom.Polygon{sliver}, f)
	// narrower than one bead width: the shrink-then-grow pass collapses it
	// entirely, so it cannot host a printable slice, and is recovered as a
	// single medial-axis thin wall instead.
	assert.Empty(t, res.Slices)
	assert.Len(t, res.ThinWalls, 1)
}
