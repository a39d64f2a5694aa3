package geom

// Polyline is an ordered, open sequence of points.
type Polyline []Point

// Length returns the open path length of pl, in Units.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].DistanceTo(pl[i])
	}
	return total
}

// Reversed returns pl with its point order reversed.
func (pl Polyline) Reversed() Polyline {
	out := make(Polyline, len(pl))
	for i, v := range pl {
		out[len(pl)-1-i] = v
	}
	return out
}

// IsClosed reports whether the first and last point of pl coincide.
func (pl Polyline) IsClosed() bool {
	return len(pl) >= 2 && pl[0].Eq(pl[len(pl)-1])
}

// SplitAtFirst converts a closed polyline into an open one, by duplicating
// its first point at the end. Used when an ExtrusionLoop becomes an
// ExtrusionPath.
func (pl Polyline) SplitAtFirst() Polyline {
	if len(pl) == 0 {
		return pl
	}
	out := make(Polyline, 0, len(pl)+1)
	out = append(out, pl...)
	if !out[len(out)-1].Eq(out[0]) {
		out = append(out, out[0])
	}
	return out
}

// Simplify reduces pl with a Douglas-Peucker pass at the given tolerance
// (in Units). Used to compact offset/fill-boundary output before it is
// handed to extrusion path generation.
func (pl Polyline) Simplify(tolerance Unit) Polyline {
	if len(pl) < 3 || tolerance <= 0 {
		return pl
	}
	keep := make([]bool, len(pl))
	keep[0] = true
	keep[len(pl)-1] = true
	douglasPeucker(pl, 0, len(pl)-1, float64(tolerance), keep)
	out := make(Polyline, 0, len(pl))
	for i, k := range keep {
		if k {
			out = append(out, pl[i])
		}
	}
	return out
}

func douglasPeucker(pts Polyline, first, last int, tol float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist := -1.0
	idx := -1
	for i := first + 1; i < last; i++ {
		d := perpDistance(pts[i], pts[first], pts[last])
		if d > maxDist {
			maxDist = d
			idx = i
		}
	}
	if maxDist > tol {
		keep[idx] = true
		douglasPeucker(pts, first, idx, tol, keep)
		douglasPeucker(pts, idx, last, tol, keep)
	}
}

func perpDistance(p, a, b Point) float64 {
	if a.Eq(b) {
		return p.DistanceTo(a)
	}
	num := Cross(a, b, p)
	fnum := float64(num)
	if fnum < 0 {
		fnum = -fnum
	}
	return fnum / a.DistanceTo(b)
}

// ClipByPolygon returns the portions of pl that lie inside clip, as a set
// of open sub-polylines. Segments exactly on the boundary are treated as
// inside. Used by BridgeDetector to extract supporting edges.
func (pl Polyline) ClipByPolygon(clip Polygon) []Polyline {
	var out []Polyline
	var current Polyline
	for i := 0; i < len(pl); i++ {
		in := clip.EnclosesPoint(pl[i]) || onBoundary(clip, pl[i])
		if in {
			current = append(current, pl[i])
		} else if len(current) > 0 {
			out = append(out, current)
			current = nil
		}
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

func onBoundary(p Polygon, pt Point) bool {
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if pointOnSegment(pt, p[i], p[j]) {
			return true
		}
	}
	return false
}

func pointOnSegment(pt, a, b Point) bool {
	if Cross(a, b, pt) != 0 {
		return false
	}
	return pt.X >= min64(a.X, b.X) && pt.X <= max64(a.X, b.X) &&
		pt.Y >= min64(a.Y, b.Y) && pt.Y <= max64(a.Y, b.Y)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
