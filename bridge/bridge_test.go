package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
)

func square(x0, y0, size geom.Unit) geom.Polygon {
	return geom.Polygon{
		geom.Pt(x0, y0),
		geom.Pt(x0+size, y0),
		geom.Pt(x0+size, y0+size),
		geom.Pt(x0, y0+size),
	}
}

func TestBuildSkipsWhenFillDensityZero(t *testing.T) {
	cfg := config.Default()
	cfg.FillDensity = 0
	infill := flow.New(0.4, 0.2, flow.RoleInfill)

	fillSurfaces := surface.Surfaces{
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}, Type: surface.Bottom},
	}
	out := Build(nil, fillSurfaces, nil, cfg, infill, 1)
	assert.Equal(t, fillSurfaces, out)
}

func TestBuildDetectsSupportedBottomBridge(t *testing.T) {
	cfg := config.Default()
	cfg.FillDensity = 0.2
	infill := flow.New(0.4, 0.2, flow.RoleInfill)

	bottom := surface.Surface{
		ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))},
		Type:      surface.Bottom,
	}
	support := surface.Surface{
		ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))},
		Type:      surface.Internal,
	}

	out := Build(nil, surface.Surfaces{bottom}, surface.Surfaces{support}, cfg, infill, 1)

	var sawBridge bool
	for _, s := range out {
		if s.Type == surface.Bottom {
			sawBridge = true
		}
	}
	assert.True(t, sawBridge, "a fully-supported bottom surface should still classify as a bridge on layer > 0")
}

func TestBuildIgnoresBottomOnLayerZero(t *testing.T) {
	cfg := config.Default()
	cfg.FillDensity = 0.2
	infill := flow.New(0.4, 0.2, flow.RoleInfill)

	bottom := surface.Surface{
		ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))},
		Type:      surface.Bottom,
	}
	out := Build(nil, surface.Surfaces{bottom}, nil, cfg, infill, 0)
	assert.Equal(t, surface.Surfaces{bottom}, out, "layer 0 bottom surfaces are never bridges (nothing below them)")
}

func TestTouchesDetectsOverlap(t *testing.T) {
	a := []geom.Polygon{square(0, 0, geom.Scale(10))}
	b := []geom.Polygon{square(5, 5, geom.Scale(10))}
	assert.True(t, touches(a, b))

	c := []geom.Polygon{square(geom.Scale(100), geom.Scale(100), geom.Scale(10))}
	assert.False(t, touches(a, c))
}

func TestNormalizeDegreesWrapsIntoRange(t *testing.T) {
	assert.InDelta(t, 10.0, normalizeDegrees(370), 1e-9)
	assert.InDelta(t, 350.0, normalizeDegrees(-10), 1e-9)
	assert.InDelta(t, 0.0, normalizeDegrees(360), 1e-9)
	assert.InDelta(t, 90.0, normalizeDegrees(90), 1e-9)
}

func TestMergeBridgesGroupsByTypeAndAngle(t *testing.T) {
	ex1 := geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}
	ex2 := geom.ExPolygon{Contour: square(5, 0, geom.Scale(10))} // overlaps ex1

	raws := []rawBridge{
		{ex: ex1, typ: surface.Bottom, angle: 45, hasAngle: true},
		{ex: ex2, typ: surface.Bottom, angle: 45, hasAngle: true},
	}
	merged := mergeBridges(raws)
	assert.Len(t, merged, 1, "same (type, angle) overlapping pieces merge into one")
}

func TestMergeBridgesKeepsDistinctAngles(t *testing.T) {
	ex1 := geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}
	ex2 := geom.ExPolygon{Contour: square(20, 20, geom.Scale(10))}

	raws := []rawBridge{
		{ex: ex1, typ: surface.Bottom, angle: 0, hasAngle: true},
		{ex: ex2, typ: surface.Bottom, angle: 90, hasAngle: true},
	}
	merged := mergeBridges(raws)
	assert.Len(t, merged, 2)
}
