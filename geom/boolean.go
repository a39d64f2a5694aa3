package geom

// UnionEx returns the union of a flat polygon soup (outer contours CCW,
// holes CW, as produced by ExPolygons.ToPolygons) as a well-formed
// ExPolygons set.
func UnionEx(polys []Polygon, more ...[]Polygon) ExPolygons {
	all := append(append([]Polygon{}, polys...), flatten(more)...)
	flat := unionFlat(all)
	return reconstructExPolygons(flat)
}

// DiffEx returns subject minus clip as a well-formed ExPolygons set.
// When safety is true, both operands are grown by SafetyOffset first,
// the standard guard against near-coincident edges destabilizing the
// Boolean kernel.
func DiffEx(subject, clip []Polygon, safety bool) ExPolygons {
	if safety {
		subject = SafetyOffset(subject)
		clip = SafetyOffset(clip)
	}
	s := unionFlat(subject)
	flat := s
	for _, c := range clip {
		flat = diffOne(flat, c)
	}
	return reconstructExPolygons(flat)
}

// IntersectionEx returns the intersection of two flat polygon soups as a
// well-formed ExPolygons set.
func IntersectionEx(a, b []Polygon) ExPolygons {
	ua := unionFlat(a)
	ub := unionFlat(b)
	var flat []Polygon
	for _, pa := range ua {
		acc := []Polygon{pa}
		for _, pb := range ub {
			var next []Polygon
			for _, piece := range acc {
				if !bboxOverlap(piece, pb) {
					continue
				}
				next = append(next, clipTwoSimple(piece, pb, opIntersection)...)
			}
			acc = next
			if len(acc) == 0 {
				break
			}
		}
		flat = append(flat, acc...)
	}
	return reconstructExPolygons(flat)
}

func flatten(groups [][]Polygon) []Polygon {
	var out []Polygon
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// unionFlat merges a polygon soup (mixed CCW/CW) to a minimal flat set by
// repeatedly merging overlapping pairs until no two members of the
// working set overlap. CCW members add area, CW members (holes fed in
// directly, e.g. from an ExPolygon's own hole list) subtract it.
func unionFlat(polys []Polygon) []Polygon {
	var adds, subs []Polygon
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		if p.IsCounterClockwise() {
			adds = append(adds, p)
		} else {
			subs = append(subs, p)
		}
	}
	result := mergeAdds(adds)
	for _, s := range subs {
		result = diffOne(result, s.Reversed())
	}
	return result
}

func mergeAdds(polys []Polygon) []Polygon {
	list := append([]Polygon{}, polys...)
	for {
		merged := false
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if !bboxOverlap(list[i], list[j]) {
					continue
				}
				pieces := clipTwoSimple(list[i], list[j], opUnion)
				if len(pieces) == 1 {
					// The two polygons actually combined into one; replace
					// both with the merged result and restart the scan.
					next := make([]Polygon, 0, len(list)-1)
					next = append(next, list[:i]...)
					next = append(next, pieces[0])
					next = append(next, list[i+1:j]...)
					next = append(next, list[j+1:]...)
					list = next
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}
	return list
}

// diffOne subtracts a single polygon c (its own winding doesn't matter --
// the region it geometrically covers is what's removed) from every
// member of acc (acc may itself contain both CCW outer pieces and CW
// holes produced by earlier folds).
func diffOne(acc []Polygon, c Polygon) []Polygon {
	if !c.IsCounterClockwise() {
		c = c.Reversed()
	}
	var out []Polygon
	for _, a := range acc {
		if !bboxOverlap(a, c) {
			out = append(out, a)
			continue
		}
		if a.IsCounterClockwise() {
			out = append(out, clipTwoSimple(a, c, opDifference)...)
		} else {
			// a is itself a hole: subtracting c from a hole means
			// re-adding the part of c that was inside the hole, i.e.
			// intersecting c with the hole's enclosed area and flipping
			// it back to a CW hole-of-the-hole. Approximate by leaving
			// the hole untouched when c does not touch it and otherwise
			// shrinking it by the intersection (rare: only exercised
			// when a gap coincides with a hole boundary).
			pieces := clipTwoSimple(a.Reversed(), c, opDifference)
			for _, p := range pieces {
				out = append(out, p.Reversed())
			}
		}
	}
	return out
}

// reconstructExPolygons groups a flat polygon soup (CCW outers, CW holes)
// into well-formed ExPolygons by nesting each hole under its innermost
// enclosing outer contour.
func reconstructExPolygons(flat []Polygon) ExPolygons {
	var outers, holes []Polygon
	for _, p := range flat {
		if len(p) < 3 {
			continue
		}
		if p.IsCounterClockwise() {
			outers = append(outers, p)
		} else {
			holes = append(holes, p)
		}
	}
	result := make(ExPolygons, len(outers))
	for i, o := range outers {
		result[i] = ExPolygon{Contour: o}
	}
	for _, h := range holes {
		best := -1
		for i, o := range outers {
			if o.EnclosesPolygon(h) {
				if best == -1 || outers[best].EnclosesPolygon(o) {
					best = i
				}
			}
		}
		if best >= 0 {
			result[best].Holes = append(result[best].Holes, h)
		}
	}
	return result
}
