package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/slicegeom/config"
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

func TestBuildDemotesTopWhenNoSolidLayers(t *testing.T) {
	cfg := config.Default()
	cfg.TopSolidLayers = 0
	cfg.BottomSolidLayers = 1

	ss := surface.Surfaces{
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}, Type: surface.Top},
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}, Type: surface.Bottom},
	}

	out := Build(nil, ss, cfg)
	assert.Equal(t, surface.Internal, out[0].Type, "top demoted when TopSolidLayers == 0")
	assert.Equal(t, surface.Bottom, out[1].Type, "bottom kept when BottomSolidLayers > 0")
}

func TestBuildPromotesSmallInternalToSolid(t *testing.T) {
	cfg := config.Default()
	cfg.SolidInfillBelowArea = 1000 // mm^2, generous

	small := surface.Surfaces{
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(5))}, Type: surface.Internal},
	}
	out := Build(nil, small, cfg)
	assert.Equal(t, surface.InternalSolid, out[0].Type)
}

func TestBuildLeavesLargeInternalAlone(t *testing.T) {
	cfg := config.Default()
	cfg.SolidInfillBelowArea = 1 // mm^2, tiny threshold

	big := surface.Surfaces{
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(50))}, Type: surface.Internal},
	}
	out := Build(nil, big, cfg)
	assert.Equal(t, surface.Internal, out[0].Type)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	cfg := config.Default()
	cfg.TopSolidLayers = 0

	ss := surface.Surfaces{
		{ExPolygon: geom.ExPolygon{Contour: square(0, 0, geom.Scale(10))}, Type: surface.Top},
	}
	_ = Build(nil, ss, cfg)
	assert.Equal(t, surface.Top, ss[0].Type, "Build must not mutate its input slice")
}
