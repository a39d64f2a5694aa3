package geom

import "math"

// Offset computes the signed Minkowski-sum offset of a flat polygon list
// by delta. Positive delta grows a counter-clockwise member outward and
// shrinks a clockwise member ("grows inward", since a hole's material is
// everything outside it), so that applying the same delta to an
// ExPolygon's flattened contour+holes uniformly grows (delta>0) or
// shrinks (delta<0) the solid material it represents. offsetOne's
// outwardNormal is already winding-aware (it points away from a CCW
// member's interior and into a CW member's enclosed area), so the same
// signed delta, unmodified, produces the right direction for both.
//
// Corners are mitered and clamped; a member that collapses through
// itself (detected by its resulting winding flipping, or by its edges
// pointing on balance against the original ones, as happens when a
// convex member is pushed inward past its inradius and comes out point-
// reflected) is dropped from the result, which is the normal
// termination condition for nested perimeter generation, not an error.
func Offset(polys []Polygon, delta Unit) []Polygon {
	var out []Polygon
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		ccw := p.IsCounterClockwise()
		pushed := offsetOne(p, delta)
		if len(pushed) < 3 {
			continue
		}
		if pushed.IsCounterClockwise() != ccw {
			continue // collapsed through itself
		}
		var along float64
		for i := range p {
			j := (i + 1) % len(p)
			along += float64(p[j].X-p[i].X)*float64(pushed[j].X-pushed[i].X) +
				float64(p[j].Y-p[i].Y)*float64(pushed[j].Y-pushed[i].Y)
		}
		if along <= 0 {
			continue // turned inside out, winding kept
		}
		out = append(out, pushed)
	}
	return out
}

// SafetyOffset grows every member by a tiny epsilon (default 0.1mm) and
// re-unions, absorbing near-coincident edges that would otherwise
// destabilize a subsequent diff/union. It is the caller's job to shrink
// back by the same epsilon afterwards where the spec calls for it.
func SafetyOffset(polys []Polygon) []Polygon {
	return SafetyOffsetEps(polys, Scale(0.1))
}

// SafetyOffsetEps is SafetyOffset with an explicit epsilon.
func SafetyOffsetEps(polys []Polygon, eps Unit) []Polygon {
	return Offset(polys, eps)
}

// InflateEach pushes every polygon along its own winding's outward
// normal by eps, the same direction Offset uses: a counter-clockwise
// polygon's enclosed area grows and a clockwise polygon's enclosed area
// shrinks. Unlike Offset, it drops no member for collapsing. LoopMerger
// uses this on raw loops fresh off the slicing plane, before it folds
// them into material (CCW) and holes (CW); its final -eps OffsetEx
// undoes the push for both.
func InflateEach(polys []Polygon, eps Unit) []Polygon {
	var out []Polygon
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		pushed := offsetOne(p, eps)
		if len(pushed) >= 3 {
			out = append(out, pushed)
		}
	}
	return out
}

// offsetOne pushes every vertex of p outward along its own winding's
// outward normal by delta, joining adjacent offset edges with a
// clamped miter.
func offsetOne(p Polygon, delta Unit) Polygon {
	n := len(p)
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		next := p[(i+1)%n]

		n1 := outwardNormal(prev, cur)
		n2 := outwardNormal(cur, next)

		bx := n1[0] + n2[0]
		by := n1[1] + n2[1]
		blen := math.Hypot(bx, by)
		if blen < 1e-9 {
			// The two edges fold back on themselves (180-degree turn):
			// push straight along n1.
			out[i] = Point{
				X: cur.X + Unit(math.Round(float64(delta)*n1[0])),
				Y: cur.Y + Unit(math.Round(float64(delta)*n1[1])),
			}
			continue
		}
		bx /= blen
		by /= blen

		cosHalf := n1[0]*bx + n1[1]*by
		if cosHalf < 0.2 {
			cosHalf = 0.2 // clamp the miter length on very sharp corners
		}
		miter := float64(delta) / cosHalf
		// cap the miter length to a small multiple of delta to avoid
		// runaway spikes on near-reflex corners
		maxMiter := math.Abs(float64(delta)) * 4
		if miter > maxMiter {
			miter = maxMiter
		}
		if miter < -maxMiter {
			miter = -maxMiter
		}
		out[i] = Point{
			X: cur.X + Unit(math.Round(miter*bx)),
			Y: cur.Y + Unit(math.Round(miter*by)),
		}
	}
	return out
}

// outwardNormal returns the unit normal of edge a->b that points away
// from the polygon's interior when the polygon is walked in the
// direction it's actually wound (so "outward" for a CCW contour, and,
// applied to a CW hole, pointing into the hole's own enclosed area).
func outwardNormal(a, b Point) [2]float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return [2]float64{0, 0}
	}
	return [2]float64{dy / length, -dx / length}
}
