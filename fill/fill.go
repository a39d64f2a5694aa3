// Package fill implements the prepare_fill_surfaces stage: demoting
// solid top/bottom surfaces when the configured solid-layer count is
// zero, and promoting small internal surfaces to solid fill.
package fill

import (
	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
)

// Build runs prepare_fill_surfaces over ss, returning a new Surfaces
// slice with updated types. ss is expected to already carry whatever
// Top/Bottom classification the caller's scheduler derived from
// neighboring layers (layerregion.Layer.SolidLayerContext is not read
// here); this stage only demotes/promotes, it never discovers
// top/bottom itself.
func Build(ctx *buildctx.Context, ss surface.Surfaces, cfg *config.Config) surface.Surfaces {
	if ctx != nil {
		ctx.StartTimer(buildctx.StageFillClassify)
		defer ctx.StopTimer(buildctx.StageFillClassify)
	}

	out := ss.Clone()
	minSolidArea := geom.ScaleArea(cfg.SolidInfillBelowArea)

	for i := range out {
		switch out[i].Type {
		case surface.Top:
			if cfg.TopSolidLayers == 0 {
				out[i].Type = surface.Internal
			}
		case surface.Bottom:
			if cfg.BottomSolidLayers == 0 {
				out[i].Type = surface.Internal
			}
		}
	}

	for i := range out {
		if out[i].Type != surface.Internal {
			continue
		}
		area := out[i].ExPolygon.Contour.Area()
		if area <= float64(minSolidArea) {
			out[i].Type = surface.InternalSolid
		}
	}

	if ctx != nil {
		ctx.Progressf("fill: classified %d surfaces", len(out))
	}
	return out
}
