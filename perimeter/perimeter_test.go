package perimeter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/extrusion"
	"github.com/arl/slicegeom/fillpattern"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
	"github.com/arl/slicegeom/surfacebuilder"
)

func square(x0, y0, size geom.Unit) geom.Polygon {
	return geom.Polygon{
		geom.Pt(x0, y0),
		geom.Pt(x0+size, y0),
		geom.Pt(x0+size, y0+size),
		geom.Pt(x0, y0+size),
	}
}

func TestBuildGeneratesExternalAndInternalPerimeters(t *testing.T) {
	cfg := config.Default()
	cfg.Perimeters = 3
	pf := flow.New(0.4, 0.2, flow.RolePerimeter)

	sr := surfacebuilder.Result{
		Slices: surface.Surfaces{
			{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}, Type: surface.Internal},
		},
	}

	res := Build(nil, sr, cfg, pf, geom.Scale(0.2), 1, fillpattern.Rectilinear{})
	assert.NotEmpty(t, res.Loops, "a 20mm square should produce perimeter loops")

	var hasExternal, hasInnermost bool
	for _, l := range res.Loops {
		if l.Role == extrusion.RoleExternalPerimeter {
			hasExternal = true
		}
		if l.Role == extrusion.RoleContourInternalPerimeter {
			hasInnermost = true
		}
	}
	assert.True(t, hasExternal, "expected an external perimeter loop")
	assert.True(t, hasInnermost, "expected the innermost contour loop tagged CONTOUR_INTERNAL_PERIMETER")
}

func TestBuildEmptySlicesYieldsNoLoops(t *testing.T) {
	cfg := config.Default()
	pf := flow.New(0.4, 0.2, flow.RolePerimeter)
	res := Build(nil, surfacebuilder.Result{}, cfg, pf, geom.Scale(0.2), 0, fillpattern.Rectilinear{})
	assert.Empty(t, res.Loops)
	assert.Empty(t, res.ThinFills)
	assert.Empty(t, res.ThinWalls)
}

func TestBuildReversesLoopsOnBrimLayer(t *testing.T) {
	cfg := config.Default()
	cfg.Perimeters = 2
	cfg.BrimWidth = 5
	pf := flow.New(0.4, 0.2, flow.RolePerimeter)

	sr := surfacebuilder.Result{
		Slices: surface.Surfaces{
			{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(20))}, Type: surface.Internal},
		},
	}

	withoutBrim := Build(nil, sr, cfg, pf, geom.Scale(0.2), 1, fillpattern.Rectilinear{})
	withBrim := Build(nil, sr, cfg, pf, geom.Scale(0.2), 0, fillpattern.Rectilinear{})

	assert.Equal(t, len(withoutBrim.Loops), len(withBrim.Loops))
	if len(withoutBrim.Loops) > 1 {
		assert.Equal(t, withoutBrim.Loops[0].Role, withBrim.Loops[len(withBrim.Loops)-1].Role,
			"layer-0 brim should reverse the loop emission order")
	}
}

func TestChainHolesOrdersPopAndClimb(t *testing.T) {
	inner := square(geom.Scale(8), geom.Scale(8), geom.Scale(4)).Reversed()  // CW, depth 0
	outer := square(geom.Scale(5), geom.Scale(5), geom.Scale(10)).Reversed() // CW, depth 1, encloses inner

	holes := []holeEntry{
		{poly: inner, depth: 0},
		{poly: outer, depth: 1},
	}
	chains := chainHoles(holes)
	assert.Len(t, chains, 1)
	assert.Equal(t, []int{0, 1}, chains[0])
	assert.True(t, holes[0].external, "the depth-0 chain start is tagged external")
}

func TestChainHolesHandlesNoHoles(t *testing.T) {
	assert.Empty(t, chainHoles(nil))
}
