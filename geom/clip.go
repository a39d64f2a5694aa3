package geom

import "sort"

// booleanOp selects the Boolean operation clipTwoSimple performs.
type booleanOp int

const (
	opUnion booleanOp = iota
	opIntersection
	opDifference
)

// vtx is a node of the doubly-linked circular vertex list used by the
// Greiner-Hormann polygon clipping algorithm.
type vtx struct {
	pt             Point
	next, prev     *vtx
	neighbor       *vtx // corresponding node in the other polygon's list, for intersections
	isIntersection bool
	entry          bool
	alpha          float64 // parametric position along the source edge, for same-edge ordering
	visited        bool
}

func buildVtxList(p Polygon) *vtx {
	nodes := make([]*vtx, len(p))
	for i, pt := range p {
		nodes[i] = &vtx{pt: pt}
	}
	n := len(nodes)
	for i := 0; i < n; i++ {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}
	return nodes[0]
}

// segmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, plus the parametric position along each, when the segments cross
// in their interior (endpoints excluded, within eps).
func segmentIntersection(a1, a2, b1, b2 Point) (pt Point, ta, tb float64, ok bool) {
	const eps = 1e-9
	x1, y1 := float64(a1.X), float64(a1.Y)
	x2, y2 := float64(a2.X), float64(a2.Y)
	x3, y3 := float64(b1.X), float64(b1.Y)
	x4, y4 := float64(b2.X), float64(b2.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom > -eps && denom < eps {
		return Point{}, 0, 0, false
	}
	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	t := tNum / denom
	u := uNum / denom
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, 0, 0, false
	}
	px := x1 + t*(x2-x1)
	py := y1 + t*(y2-y1)
	return Point{Unit(px), Unit(py)}, t, u, true
}

// crossingPair records one edge-edge intersection found between subject
// edge sEdge (sNodes[sEdge]..next) and clip edge cEdge.
type crossingPair struct {
	sEdge, cEdge int
	sAlpha, cAlpha float64
	sVtx, cVtx   *vtx
}

// gatherOriginal returns the original (non-intersection) vertices of a
// list, in order -- used to test point-in-polygon status of the first one.
func gatherOriginal(start *vtx) Polygon {
	var out Polygon
	cur := start
	for {
		if !cur.isIntersection {
			out = append(out, cur.pt)
		}
		cur = cur.next
		if cur == start {
			break
		}
	}
	return out
}

// clipTwoSimple computes subject OP clip for two simple (non-self-
// intersecting) polygons using the Greiner-Hormann algorithm, falling
// back to a pure containment decision when the two contours don't cross.
func clipTwoSimple(subject, clip Polygon, op booleanOp) []Polygon {
	if len(subject) < 3 || len(clip) < 3 {
		return compactNonEmpty(subject, clip, op)
	}

	sList := buildVtxList(subject)
	cList := buildVtxList(clip)
	sNodes := vtxSlice(sList, len(subject))
	cNodes := vtxSlice(cList, len(clip))

	var crossings []crossingPair
	for i, sa := range sNodes {
		sb := sa.next
		for j, ca := range cNodes {
			cb := ca.next
			pt, ta, tb, ok := segmentIntersection(sa.pt, sb.pt, ca.pt, cb.pt)
			if !ok {
				continue
			}
			sv := &vtx{pt: pt, isIntersection: true, alpha: ta}
			cv := &vtx{pt: pt, isIntersection: true, alpha: tb}
			sv.neighbor = cv
			cv.neighbor = sv
			crossings = append(crossings, crossingPair{i, j, ta, tb, sv, cv})
		}
	}

	if len(crossings) == 0 {
		return containmentResult(subject, clip, op)
	}

	insertOnEdges(sNodes, crossings, true)
	insertOnEdges(cNodes, crossings, false)

	// Determine entry/exit status: walk each list once, starting from the
	// status of the first original vertex relative to the other polygon,
	// then toggle at every intersection.
	markEntryExit(sList, clip)
	markEntryExit(cList, subject)

	switch op {
	case opUnion:
		invert(sList)
		invert(cList)
	case opDifference:
		invert(cList)
	}

	return traceContours(sList)
}

func vtxSlice(start *vtx, n int) []*vtx {
	out := make([]*vtx, 0, n)
	cur := start
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur = cur.next
	}
	return out
}

// insertOnEdges splices each crossing's intersection vertex into the
// linked list right after the edge's start node, ordered by alpha when
// several crossings share the same edge.
func insertOnEdges(nodes []*vtx, crossings []crossingPair, subjectSide bool) {
	byEdge := map[int][]*vtx{}
	for _, x := range crossings {
		idx, v := x.sEdge, x.sVtx
		if !subjectSide {
			idx, v = x.cEdge, x.cVtx
		}
		byEdge[idx] = append(byEdge[idx], v)
	}
	for idx, ivs := range byEdge {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].alpha < ivs[j].alpha })
		start := nodes[idx]
		end := start.next
		prev := start
		for _, iv := range ivs {
			iv.prev = prev
			iv.next = end
			prev.next = iv
			end.prev = iv
			prev = iv
		}
	}
}

func markEntryExit(list *vtx, other Polygon) {
	orig := gatherOriginal(list)
	if len(orig) == 0 {
		return
	}
	status := !other.EnclosesPoint(orig[0])
	cur, start, first := list, list, true
	for first || cur != start {
		first = false
		if cur.isIntersection {
			cur.entry = status
			status = !status
		}
		cur = cur.next
	}
}

func invert(list *vtx) {
	cur, start, first := list, list, true
	for first || cur != start {
		first = false
		if cur.isIntersection {
			cur.entry = !cur.entry
		}
		cur = cur.next
	}
}

// traceContours walks the marked, merged vertex lists and emits the
// resulting simple contours, following the Greiner-Hormann tracing rule:
// from an entry vertex move forward, from an exit vertex move backward,
// switching lists at every intersection.
func traceContours(sList *vtx) []Polygon {
	var result []Polygon
	for _, v := range collectAll(sList) {
		if !v.isIntersection || v.visited {
			continue
		}
		var contour Polygon
		cur := v
		for {
			cur.visited = true
			if cur.neighbor != nil {
				cur.neighbor.visited = true
			}
			if cur.entry {
				for {
					cur = cur.next
					contour = append(contour, cur.pt)
					if cur.isIntersection {
						break
					}
				}
			} else {
				for {
					cur = cur.prev
					contour = append(contour, cur.pt)
					if cur.isIntersection {
						break
					}
				}
			}
			cur = cur.neighbor
			if cur == v || cur == nil {
				break
			}
		}
		if len(contour) >= 3 {
			result = append(result, contour)
		}
	}
	return result
}

func collectAll(start *vtx) []*vtx {
	var out []*vtx
	cur := start
	for {
		out = append(out, cur)
		cur = cur.next
		if cur == start {
			break
		}
	}
	return out
}

// containmentResult handles the degenerate (no edge crossings) case for
// clipTwoSimple: the two contours are nested or disjoint.
func containmentResult(subject, clip Polygon, op booleanOp) []Polygon {
	sInC := clip.EnclosesPolygon(subject)
	cInS := subject.EnclosesPolygon(clip)
	switch op {
	case opUnion:
		switch {
		case sInC:
			return []Polygon{clip}
		case cInS:
			return []Polygon{subject}
		default:
			return []Polygon{subject, clip}
		}
	case opIntersection:
		switch {
		case sInC:
			return []Polygon{subject}
		case cInS:
			return []Polygon{clip}
		default:
			return nil
		}
	case opDifference: // subject - clip
		switch {
		case cInS:
			return []Polygon{subject, clip.Reversed()}
		case sInC:
			return nil
		default:
			return []Polygon{subject}
		}
	}
	return nil
}

func compactNonEmpty(subject, clip Polygon, op booleanOp) []Polygon {
	var out []Polygon
	if op != opDifference && len(subject) >= 3 {
		out = append(out, subject)
	}
	if op == opUnion && len(clip) >= 3 {
		out = append(out, clip)
	}
	return out
}
