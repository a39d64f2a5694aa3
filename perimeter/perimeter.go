// Package perimeter implements the make_perimeters stage: nested
// perimeter-loop generation with gap detection and gap fill, hole/
// island ordering into printable extrusion loops, and thin-wall
// routing.
package perimeter

import (
	"sort"

	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/extrusion"
	"github.com/arl/slicegeom/fillpattern"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
	"github.com/arl/slicegeom/surfacebuilder"
)

// Island is one slice surface's generated perimeters, gaps and fill
// boundary, before its loops are traced into extrusion output.
type Island struct {
	Surface      surface.Surface
	depths       []geom.ExPolygons // last_offsets at each depth, 0 = outermost
	gaps         geom.ExPolygons
	FillSurfaces geom.ExPolygons
}

// Result is PerimeterGenerator's output for one region/layer.
type Result struct {
	Loops     []extrusion.Loop
	ThinFills []extrusion.Path
	ThinWalls []extrusion.Path

	// FillSurfaces is §4.4 step 4's inward fill-boundary pass, collected
	// across every island: the perimeter-inset area FillClassifier and
	// BridgeDetector must classify and bridge over, not the full slice
	// area SurfaceBuilder produced.
	FillSurfaces surface.Surfaces
}

// Build runs make_perimeters over sr's slices and thin walls.
func Build(ctx *buildctx.Context, sr surfacebuilder.Result, cfg *config.Config, perimeterFlow flow.Flow, layerHeight geom.Unit, layerID int, fill fillpattern.FillPattern) Result {
	if ctx != nil {
		ctx.StartTimer(buildctx.StagePerimeters)
		defer ctx.StopTimer(buildctx.StagePerimeters)
	}

	ordered := orderIslands(sr.Slices)

	var loops []extrusion.Loop
	var thinFills []extrusion.Path
	var fillSurfaces surface.Surfaces

	for _, s := range ordered {
		island := buildIsland(ctx, s, cfg, perimeterFlow, layerHeight)
		loops = append(loops, traceIsland(island, perimeterFlow)...)
		thinFills = append(thinFills, fillGaps(ctx, &island, cfg, perimeterFlow, layerHeight, fill)...)
		for _, ex := range island.FillSurfaces {
			fillSurfaces = append(fillSurfaces, surface.Surface{
				ExPolygon:                 ex,
				Type:                      island.Surface.Type,
				AdditionalInnerPerimeters: island.Surface.AdditionalInnerPerimeters,
			})
		}
	}

	if layerID == 0 && cfg.BrimWidth > 0 {
		reverseLoops(loops)
	}

	thinWalls := routeThinWalls(sr.ThinWalls, perimeterFlow, layerHeight)

	return Result{Loops: loops, ThinFills: thinFills, ThinWalls: thinWalls, FillSurfaces: fillSurfaces}
}

// orderIslands sorts surfaces by a nearest-neighbor greedy walk over
// each island's first contour point, starting from the origin, to
// minimize travel between islands.
func orderIslands(ss surface.Surfaces) surface.Surfaces {
	remaining := append(surface.Surfaces{}, ss...)
	out := make(surface.Surfaces, 0, len(remaining))
	cur := geom.Pt(0, 0)
	for len(remaining) > 0 {
		best := 0
		bestDist := -1.0
		for i, s := range remaining {
			if len(s.ExPolygon.Contour) == 0 {
				continue
			}
			d := cur.DistanceTo(s.ExPolygon.Contour[0])
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = i
			}
		}
		out = append(out, remaining[best])
		if len(remaining[best].ExPolygon.Contour) > 0 {
			cur = remaining[best].ExPolygon.Contour[0]
		}
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

func buildIsland(ctx *buildctx.Context, s surface.Surface, cfg *config.Config, perimeterFlow flow.Flow, layerHeight geom.Unit) Island {
	island := Island{Surface: s}
	sp := perimeterFlow.ScaledSpacing
	n := cfg.Perimeters + s.AdditionalInnerPerimeters

	lastOffsets := geom.ExPolygons{s.ExPolygon}
	island.depths = append(island.depths, lastOffsets)

	for depth := 1; ; depth++ {
		var newOffsets geom.ExPolygons
		var gapsAtDepth geom.ExPolygons
		for _, e := range lastOffsets {
			collapsed := offsetExOnce(e, -threeHalves(sp))
			regrown := offsetAllOnce(collapsed, oneHalf(sp))
			eprime := geom.UnionEx(regrown)
			newOffsets = append(newOffsets, eprime...)

			shrunkHalf := e.OffsetEx(-oneHalf(sp))
			grownHalf := geom.Offset(eprime.ToPolygons(), oneHalf(sp))
			gap := geom.DiffEx(shrunkHalf.ToPolygons(), grownHalf, true)
			minGapArea := float64(perimeterFlow.ScaledWidth) * float64(perimeterFlow.ScaledWidth)
			for _, g := range gap {
				a := g.Area()
				if a < 0 {
					a = -a
				}
				if a >= minGapArea {
					gapsAtDepth = append(gapsAtDepth, g)
				}
			}
		}
		island.gaps = append(island.gaps, gapsAtDepth...)

		if len(newOffsets) == 0 || depth == n {
			island.depths = append(island.depths, newOffsets)
			break
		}
		island.depths = append(island.depths, newOffsets)
		lastOffsets = newOffsets
	}

	last := island.depths[len(island.depths)-1]
	fillBoundary := geom.ExPolygons{}
	for _, e := range last {
		collapsed := offsetExOnce(e, -threeHalves(sp))
		regrown := offsetAllOnce(collapsed, oneHalf(sp))
		fillBoundary = append(fillBoundary, geom.UnionEx(regrown)...)
	}
	var simplified geom.ExPolygons
	for _, e := range fillBoundary {
		simplified = append(simplified, geom.ExPolygon{
			Contour: geom.Polygon(geom.Polyline(e.Contour).Simplify(geom.SCALEDRESOLUTION)),
			Holes:   e.Holes,
		})
	}
	island.FillSurfaces = simplified
	return island
}

func offsetExOnce(e geom.ExPolygon, delta geom.Unit) geom.ExPolygons {
	return e.OffsetEx(delta)
}

func offsetAllOnce(set geom.ExPolygons, delta geom.Unit) []geom.Polygon {
	var out []geom.Polygon
	for _, e := range set {
		out = append(out, geom.Offset(e.Polygons(), delta)...)
	}
	return out
}

// threeHalves returns 1.5*s rounded to the nearest Unit.
func threeHalves(s geom.Unit) geom.Unit { return s + s/2 }

// oneHalf returns 0.5*s rounded to the nearest Unit.
func oneHalf(s geom.Unit) geom.Unit { return s / 2 }

// traceIsland walks an island's depths into ExtrusionLoops: holes
// popped-and-climbed innermost first, contours innermost to outermost.
func traceIsland(island Island, perimeterFlow flow.Flow) []extrusion.Loop {
	var out []extrusion.Loop
	maxDepth := len(island.depths) - 2 // last depth is the gap-detection-only pass
	if maxDepth < 0 {
		return nil
	}

	var holes []holeEntry
	for d := 0; d <= maxDepth; d++ {
		for _, e := range island.depths[d] {
			for _, h := range e.Holes {
				holes = append(holes, holeEntry{poly: h, depth: d})
			}
		}
	}

	chains := chainHoles(holes)
	for _, chain := range chains {
		for i := len(chain) - 1; i >= 0; i-- {
			h := holes[chain[i]]
			role := extrusion.RolePerimeter
			if h.external {
				role = extrusion.RoleExternalPerimeter
			}
			loop := extrusion.Loop{Polygon: h.poly, Role: role, FlowSpacing: perimeterFlow.ScaledSpacing, Height: 0}
			if loop.Printable(perimeterFlow.ScaledWidth) {
				out = append(out, loop)
			}
		}
	}

	for d := maxDepth; d >= 0; d-- {
		role := extrusion.RolePerimeter
		switch {
		case d == maxDepth:
			role = extrusion.RoleContourInternalPerimeter
		case d == 0:
			role = extrusion.RoleExternalPerimeter
		}
		for _, e := range island.depths[d] {
			loop := extrusion.Loop{Polygon: e.Contour, Role: role, FlowSpacing: perimeterFlow.ScaledSpacing, Height: 0}
			if loop.Printable(perimeterFlow.ScaledWidth) {
				out = append(out, loop)
			}
		}
	}
	return out
}

// holeEntry is one hole polygon at a given nesting depth, annotated once
// chainHoles decides it starts a chain (external).
type holeEntry struct {
	poly     geom.Polygon
	depth    int
	external bool
}

// chainHoles implements the pop-and-climb hole ordering: starting from
// each depth-0 hole, repeatedly find a depth+1 hole enclosing it with no
// other depth-d hole also enclosed by that parent, and ascend. A
// conflicting sibling ends the chain.
func chainHoles(holes []holeEntry) [][]int {
	var depth0 []int
	for i, h := range holes {
		if h.depth == 0 {
			depth0 = append(depth0, i)
		}
	}
	sort.SliceStable(depth0, func(a, b int) bool {
		if len(holes[depth0[a]].poly) == 0 || len(holes[depth0[b]].poly) == 0 {
			return false
		}
		pa := holes[depth0[a]].poly[0]
		pb := holes[depth0[b]].poly[0]
		return pa.DistanceTo(geom.Pt(0, 0)) < pb.DistanceTo(geom.Pt(0, 0))
	})

	consumed := make([]bool, len(holes))
	var chains [][]int
	for _, start := range depth0 {
		if consumed[start] {
			continue
		}
		holes[start].external = true
		chain := []int{start}
		consumed[start] = true
		cur := start
		for {
			wantDepth := holes[cur].depth + 1
			var candidate = -1
			conflict := false
			for i, h := range holes {
				if consumed[i] || h.depth != wantDepth {
					continue
				}
				if h.poly.EnclosesPolygon(holes[cur].poly) {
					if candidate == -1 {
						candidate = i
					} else {
						conflict = true
					}
				}
			}
			if candidate == -1 || conflict {
				break
			}
			// ensure no other depth-wantDepth-1 (i.e. cur-depth) hole is
			// also enclosed by candidate: that would be a conflicting
			// sibling at cur's own depth
			siblingConflict := false
			for i, h := range holes {
				if i == cur || consumed[i] || h.depth != holes[cur].depth {
					continue
				}
				if holes[candidate].poly.EnclosesPolygon(h.poly) {
					siblingConflict = true
					break
				}
			}
			if siblingConflict {
				break
			}
			chain = append(chain, candidate)
			consumed[candidate] = true
			cur = candidate
		}
		chains = append(chains, chain)
	}
	return chains
}

func reverseLoops(loops []extrusion.Loop) {
	for i, j := 0, len(loops)-1; i < j; i, j = i+1, j-1 {
		loops[i], loops[j] = loops[j], loops[i]
	}
}

// fillGaps implements §4.4 step 5: gap filling at trial widths
// {1.5W, W, 0.5W}, extracting non-collapsing components of that width
// from the island's gaps and handing them to a rectilinear fill pattern
// at density 1.
func fillGaps(ctx *buildctx.Context, island *Island, cfg *config.Config, perimeterFlow flow.Flow, layerHeight geom.Unit, fill fillpattern.FillPattern) []extrusion.Path {
	if cfg.GapFillSpeed <= 0 || len(island.gaps) == 0 {
		return nil
	}
	W := perimeterFlow.Width
	trials := []float64{1.5 * W, W, 0.5 * W}

	gaps := island.gaps
	var out []extrusion.Path
	for _, w := range trials {
		if len(gaps) == 0 {
			break
		}
		f := perimeterFlow.Clone(w)
		half := oneHalf(f.ScaledWidth)

		thisWidth := noncollapsingOffsetEx(gaps, -half, half)

		var inset geom.ExPolygons
		for _, e := range thisWidth {
			inset = append(inset, e.OffsetEx(-half)...)
		}

		for _, e := range inset {
			lines := fill.Fill(e, 1.0, f.ScaledSpacing)
			for _, l := range lines {
				simplified := l.Simplify(f.ScaledWidth / 3)
				if simplified.Length() <= 0 {
					continue
				}
				out = append(out, extrusion.Path{
					Polyline:    simplified,
					Role:        extrusion.RoleGapFill,
					FlowSpacing: f.ScaledSpacing,
					Height:      layerHeight,
				})
			}
		}

		gaps = geom.DiffEx(gaps.ToPolygons(), thisWidth.ToPolygons(), false)
	}
	island.gaps = gaps
	return out
}

// noncollapsingOffsetEx offsets each member of set by shrink then grows
// it back by grow, but keeps members that would collapse under the
// shrink alone by falling back to the original member, grown by grow
// like the others -- preserving topology for gap components narrower
// than the requested trial width instead of discarding them.
func noncollapsingOffsetEx(set geom.ExPolygons, shrink, grow geom.Unit) geom.ExPolygons {
	var out geom.ExPolygons
	for _, e := range set {
		shrunk := e.OffsetEx(shrink)
		if len(shrunk) == 0 {
			// collapsed: keep the gap itself re-grown in place instead of
			// losing it
			out = append(out, e.OffsetEx(grow)...)
			continue
		}
		for _, s := range shrunk {
			out = append(out, s.OffsetEx(grow)...)
		}
	}
	return out
}

// routeThinWalls orders thin walls by shortest-path and tags each as an
// EXTERNAL_PERIMETER path, splitting closed ones at their first point.
func routeThinWalls(walls []surfacebuilder.ThinWall, perimeterFlow flow.Flow, layerHeight geom.Unit) []extrusion.Path {
	ordered := append([]surfacebuilder.ThinWall{}, walls...)
	cur := geom.Pt(0, 0)
	out := make([]extrusion.Path, 0, len(ordered))
	for len(ordered) > 0 {
		best := 0
		bestDist := -1.0
		for i, w := range ordered {
			p := thinWallStart(w)
			d := cur.DistanceTo(p)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = i
			}
		}
		w := ordered[best]
		ordered = append(ordered[:best], ordered[best+1:]...)

		var pl geom.Polyline
		if len(w.Polygon) > 0 {
			pl = geom.Polyline(w.Polygon).SplitAtFirst()
		} else {
			pl = w.Polyline
		}
		out = append(out, extrusion.Path{
			Polyline:    pl,
			Role:        extrusion.RoleExternalPerimeter,
			FlowSpacing: perimeterFlow.ScaledSpacing,
			Height:      layerHeight,
		})
		if len(pl) > 0 {
			cur = pl[len(pl)-1]
		}
	}
	return out
}

func thinWallStart(w surfacebuilder.ThinWall) geom.Point {
	if len(w.Polygon) > 0 {
		return w.Polygon[0]
	}
	if len(w.Polyline) > 0 {
		return w.Polyline[0]
	}
	return geom.Pt(0, 0)
}
