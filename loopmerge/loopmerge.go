// Package loopmerge converts the unordered bag of closed loop polygons a
// slicing plane produces into a set of well-formed surfaces, handling
// concentric loops of identical winding that plain even-odd or
// non-zero fill rules cannot.
package loopmerge

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
)

// safetyEps is the safety-offset epsilon applied to raw loops before
// folding, and undone after.
const safetyEps = geom.Unit(geom.SCALINGFACTOR / 10) // 0.1mm

// Merge builds the initial set of surfaces from the raw, unordered loop
// polygons a slicing plane produced for one region on one layer. Loops
// with fewer than 3 distinct points are silently dropped (the spec's
// DegenerateLoop condition); an empty input returns a nil surface set
// (EmptyInput).
func Merge(ctx *buildctx.Context, loops []geom.Polygon) surface.Surfaces {
	if ctx != nil {
		ctx.StartTimer(buildctx.StageLoopMerge)
		defer ctx.StopTimer(buildctx.StageLoopMerge)
	}
	if len(loops) == 0 {
		return nil
	}

	clean := dropDegenerate(loops)
	if len(clean) == 0 {
		return nil
	}

	ordered := sortOuterFirst(clean)
	safe := geom.InflateEach(ordered, safetyEps)

	var result geom.ExPolygons
	for _, loop := range safe {
		if loop.IsCounterClockwise() {
			result = geom.UnionEx(append(result.ToPolygons(), loop))
		} else {
			result = geom.DiffEx(result.ToPolygons(), []geom.Polygon{loop}, false)
		}
	}

	out := make(surface.Surfaces, 0, len(result))
	for _, ex := range result {
		shrunk := ex.OffsetEx(-safetyEps)
		for _, s := range shrunk {
			assert.True(s.Validate() == nil, "loopmerge: ill-formed expolygon after safety shrink: %v", s.Validate())
			out = append(out, surface.Surface{ExPolygon: s, Type: surface.Internal})
		}
	}
	return out
}

func dropDegenerate(loops []geom.Polygon) []geom.Polygon {
	var out []geom.Polygon
	for _, l := range loops {
		if len(distinctPoints(l)) >= 3 {
			out = append(out, l)
		}
	}
	return out
}

func distinctPoints(p geom.Polygon) []geom.Point {
	var out []geom.Point
	for _, pt := range p {
		dup := false
		for _, o := range out {
			if o.Eq(pt) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pt)
		}
	}
	return out
}

// sortOuterFirst implements "any loop enclosing another comes first" as
// a stable topological sort on the containment DAG: a loop's depth is
// how many other loops enclose its first vertex, and loops sort by
// ascending depth. Stable sort preserves input order among non-nested
// siblings, matching the Design Notes' resolution of the source's
// non-total comparator.
func sortOuterFirst(loops []geom.Polygon) []geom.Polygon {
	depth := make([]int, len(loops))
	for i, a := range loops {
		for j, b := range loops {
			if i == j || len(a) == 0 {
				continue
			}
			if b.EnclosesPoint(a[0]) {
				depth[i]++
			}
		}
	}
	idx := make([]int, len(loops))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool { return depth[idx[x]] < depth[idx[y]] })

	out := make([]geom.Polygon, len(loops))
	for i, id := range idx {
		out[i] = loops[id]
	}
	return out
}
