// Package bridge implements the process_bridges stage: detecting
// unsupported bottom surfaces (bridges) and unsupported-from-above top
// surfaces (reverse bridges), computing their span angle, extending
// them into their supports, merging overlapping candidates and
// repartitioning fill surfaces around the result.
package bridge

import (
	"math"

	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/surface"
)

const safetyEps = geom.Unit(geom.SCALINGFACTOR / 10) // 0.1mm

// rawBridge is one not-yet-merged bridge candidate's extended geometry.
type rawBridge struct {
	ex       geom.ExPolygon
	typ      surface.Type
	angle    float64
	hasAngle bool
}

// Build runs process_bridges. fillSurfaces is the already fill-classified
// surface set (see package fill); slices is SurfaceBuilder's inset
// geometry, used as the support set. Skips entirely when
// cfg.FillDensity == 0.
func Build(ctx *buildctx.Context, fillSurfaces, slices surface.Surfaces, cfg *config.Config, infillFlow flow.Flow, layerID int) surface.Surfaces {
	if ctx != nil {
		ctx.StartTimer(buildctx.StageBridgeDetect)
		defer ctx.StopTimer(buildctx.StageBridgeDetect)
	}
	if cfg.FillDensity == 0 {
		return fillSurfaces
	}

	support := slices.FilterByType(surface.Internal, surface.InternalSolid)

	var candidates []surface.Surface
	for _, s := range fillSurfaces {
		if s.Type == surface.Bottom && layerID > 0 {
			candidates = append(candidates, s)
		} else if s.Type == surface.Top {
			candidates = append(candidates, s)
		}
	}

	var raws []rawBridge
	for _, c := range candidates {
		rb, ok := detectOne(ctx, c, support, infillFlow)
		if ok {
			raws = append(raws, rb...)
		}
	}

	finalBridges := mergeBridges(raws)
	return applyBridges(fillSurfaces, finalBridges)
}

func detectOne(ctx *buildctx.Context, c surface.Surface, support surface.Surfaces, infillFlow flow.Flow) ([]rawBridge, bool) {
	csSet := c.ExPolygon.OffsetEx(safetyEps)
	if len(csSet) == 0 {
		return nil, false
	}
	cs := csSet[0]

	reach := geom.Unit(float64(infillFlow.ScaledSpacing) * math.Sqrt2)
	contourOffset := geom.Offset([]geom.Polygon{cs.Contour}, reach)
	if len(contourOffset) == 0 {
		return nil, false
	}

	var supporting []surface.Surface
	for _, s := range support {
		if touches(s.ExPolygon.Polygons(), contourOffset) {
			supporting = append(supporting, s)
		}
	}
	if len(supporting) == 0 {
		return nil, false
	}

	var angle float64
	var hasAngle bool
	if c.Type == surface.Bottom {
		angle, hasAngle = bridgeAngle(supporting, contourOffset, ctx)
	}

	bridgeOffset := geom.Offset([]geom.Polygon{cs.Contour}, geom.Scale(3))
	if len(bridgeOffset) == 0 {
		return nil, false
	}

	var soup []geom.Polygon
	soup = append(soup, cs.Polygons()...)
	for _, s := range supporting {
		soup = append(soup, s.ExPolygon.Polygons()...)
	}
	union := geom.UnionEx(soup)
	extended := geom.IntersectionEx(union.ToPolygons(), bridgeOffset)

	out := make([]rawBridge, 0, len(extended))
	for _, ex := range extended {
		out = append(out, rawBridge{ex: ex, typ: c.Type, angle: angle, hasAngle: hasAngle})
	}
	return out, true
}

// touches reports whether any polygon of a intersects any polygon of b,
// using the Boolean kernel's intersection as the authority rather than a
// cheaper but less exact test.
func touches(a, b []geom.Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return len(geom.IntersectionEx(a, b)) > 0
}

func bridgeAngle(supporting []surface.Surface, contourOffset []geom.Polygon, ctx *buildctx.Context) (float64, bool) {
	var edges []geom.Polyline
	for _, s := range supporting {
		for _, p := range s.ExPolygon.Polygons() {
			opened := geom.Polyline(p).SplitAtFirst()
			for _, clip := range contourOffset {
				for _, seg := range opened.ClipByPolygon(clip) {
					if len(seg) >= 2 {
						edges = append(edges, seg)
					}
				}
			}
		}
	}

	switch {
	case len(edges) == 0:
		if ctx != nil {
			ctx.Warningf("bridge: no supporting edges found, leaving angle undefined")
		}
		return 0, false
	case len(edges) == 1:
		e := edges[0]
		if len(e) > 2 {
			return normalizeDegrees(geom.Direction(e[0], e[len(e)-1]) * 180 / math.Pi), true
		}
		return 0, false
	case len(edges) == 2:
		m1 := geom.Midpoint(edges[0][0], edges[0][len(edges[0])-1])
		m2 := geom.Midpoint(edges[1][0], edges[1][len(edges[1])-1])
		return normalizeDegrees(geom.Direction(m1, m2) * 180 / math.Pi), true
	default:
		var all []geom.Point
		for _, e := range edges {
			all = append(all, e...)
		}
		var cx, cy float64
		for _, p := range all {
			cx += float64(p.X)
			cy += float64(p.Y)
		}
		cx /= float64(len(all))
		cy /= float64(len(all))

		var sumx, sumy float64
		for _, p := range all {
			dx := float64(p.X) - cx
			dy := float64(p.Y) - cy
			length := math.Hypot(dx, dy)
			if length < 1e-9 {
				continue
			}
			theta := math.Atan2(dy, dx)
			sumx += math.Cos(theta) * length
			sumy += math.Sin(theta) * length
		}
		if sumx == 0 && sumy == 0 {
			return 0, false
		}
		return normalizeDegrees(math.Atan2(sumy, sumx) * 180 / math.Pi), true
	}
}

func normalizeDegrees(d float64) float64 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}

// mergeBridges groups raw bridge pieces by (type, angle), unions each
// group and subtracts every previously accepted group in priority
// (first-seen) order.
func mergeBridges(raws []rawBridge) []rawBridge {
	type groupKey struct {
		typ      surface.Type
		hasAngle bool
		angle    float64
	}
	var order []groupKey
	groups := make(map[groupKey][]geom.Polygon)
	seen := make(map[groupKey]bool)
	for _, rb := range raws {
		k := groupKey{typ: rb.typ, hasAngle: rb.hasAngle, angle: rb.angle}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
		groups[k] = append(groups[k], rb.ex.Polygons()...)
	}

	var accepted []geom.Polygon
	var out []rawBridge
	for _, k := range order {
		union := geom.UnionEx(groups[k])
		remaining := geom.DiffEx(union.ToPolygons(), accepted, false)
		for _, ex := range remaining {
			out = append(out, rawBridge{ex: ex, typ: k.typ, angle: k.angle, hasAngle: k.hasAngle})
		}
		accepted = append(accepted, remaining.ToPolygons()...)
	}
	return out
}

// applyBridges intersects each accepted bridge with the fill surfaces
// and re-emits every other fill surface with the union of all bridges
// subtracted out.
func applyBridges(fillSurfaces surface.Surfaces, bridges []rawBridge) surface.Surfaces {
	if len(bridges) == 0 {
		return fillSurfaces
	}

	var bridgePolys []geom.Polygon
	for _, b := range bridges {
		bridgePolys = append(bridgePolys, b.ex.Polygons()...)
	}

	var out surface.Surfaces
	for _, b := range bridges {
		pieces := geom.IntersectionEx(fillSurfaces.Polygons(), b.ex.Polygons())
		for _, p := range pieces {
			out = append(out, surface.Surface{
				ExPolygon:      p,
				Type:           b.typ,
				BridgeAngle:    b.angle,
				HasBridgeAngle: b.hasAngle,
			})
		}
	}

	for _, s := range fillSurfaces {
		remainder := geom.DiffEx(s.ExPolygon.Polygons(), bridgePolys, false)
		for _, r := range remainder {
			out = append(out, surface.Surface{ExPolygon: r, Type: s.Type})
		}
	}

	return out
}
