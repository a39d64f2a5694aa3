// Package surfacebuilder implements the make_surfaces stage: from the
// raw loop soup for a region/layer, produce the inset "slice" surfaces
// that host perimeters, and separately extract thin-wall skeletons for
// features too narrow to host even one perimeter loop.
package surfacebuilder

import (
	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/loopmerge"
	"github.com/arl/slicegeom/surface"
)

// ThinWall is one medial-axis skeleton branch: either an open Polyline,
// or (for a fully closed thin loop, e.g. a ring) a closed Polygon.
type ThinWall struct {
	Polyline geom.Polyline
	Polygon  geom.Polygon
}

// Result is SurfaceBuilder's output: the inset slices that feed
// PerimeterGenerator, and the thin walls routed separately.
type Result struct {
	Slices    surface.Surfaces
	ThinWalls []ThinWall
}

// Build runs the make_surfaces stage for one region/layer's raw loops.
func Build(ctx *buildctx.Context, loops []geom.Polygon, perimeterFlow flow.Flow) Result {
	if ctx != nil {
		ctx.StartTimer(buildctx.StageSurfaceBuild)
		defer ctx.StopTimer(buildctx.StageSurfaceBuild)
	}

	original := loopmerge.Merge(ctx, loops)
	if len(original) == 0 {
		return Result{}
	}

	d := perimeterFlow.ScaledWidth / 2

	var grown []geom.Polygon
	for _, s := range original {
		shrunk := s.ExPolygon.OffsetEx(-2 * d)
		for _, sh := range shrunk {
			for _, g := range sh.OffsetEx(d) {
				grown = append(grown, g.Polygons()...)
			}
		}
	}

	slicesEx := geom.UnionEx(grown)
	slices := make(surface.Surfaces, len(slicesEx))
	for i, ex := range slicesEx {
		slices[i] = surface.Surface{ExPolygon: ex, Type: surface.Internal}
	}

	thinWalls := extractThinWalls(original, slices, perimeterFlow)

	return Result{Slices: slices, ThinWalls: thinWalls}
}

func extractThinWalls(original, slices surface.Surfaces, perimeterFlow flow.Flow) []ThinWall {
	d := perimeterFlow.ScaledWidth / 2
	slicePolys := slices.Polygons()
	unionSlices := geom.UnionEx(slicePolys).ToPolygons()
	outgrown := geom.Offset(unionSlices, d)

	diff := geom.DiffEx(original.Polygons(), outgrown, true)

	minArea := float64(perimeterFlow.ScaledSpacing) * float64(perimeterFlow.ScaledSpacing)

	var out []ThinWall
	for _, ex := range diff {
		area := ex.Area()
		if area < 0 {
			area = -area
		}
		if area <= minArea {
			continue
		}
		res := geom.MedialAxis(ex, perimeterFlow.ScaledWidth)
		for _, pl := range res.Polylines {
			out = append(out, ThinWall{Polyline: pl})
		}
		for _, pg := range res.Polygons {
			out = append(out, ThinWall{Polygon: pg})
		}
	}
	return out
}
