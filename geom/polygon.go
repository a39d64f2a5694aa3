package geom

import "math"

// Polygon is an ordered, implicitly-closed sequence of points with no
// duplicate consecutive vertices. By convention a counter-clockwise
// Polygon is an outer contour, a clockwise one is a hole.
type Polygon []Point

// IsCounterClockwise reports whether p winds counter-clockwise, using the
// sign of the shoelace area.
func (p Polygon) IsCounterClockwise() bool {
	return p.Area() > 0
}

// Area returns the signed area of p (shoelace formula, doubled terms
// divided out). Positive for CCW, negative for CW.
func (p Polygon) Area() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return float64(sum) / 2
}

// Length returns the closed perimeter length of p, in Units.
func (p Polygon) Length() float64 {
	n := len(p)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p[i].DistanceTo(p[j])
	}
	return total
}

// Reversed returns p with its vertex order reversed (flips winding).
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// BoundingBox returns the axis-aligned bounding box of p.
func (p Polygon) BoundingBox() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// bboxOverlap reports whether the bounding boxes of a and b overlap, a
// cheap broad-phase reject before exact Boolean work.
func bboxOverlap(a, b Polygon) bool {
	aMin, aMax := a.BoundingBox()
	bMin, bMax := b.BoundingBox()
	return aMin.X <= bMax.X && bMin.X <= aMax.X && aMin.Y <= bMax.Y && bMin.Y <= aMax.Y
}

// EnclosesPoint reports whether pt lies strictly inside p, using an
// even-odd ray-casting test. Used by LoopMerger's containment sort and by
// the Boolean kernel's hole/outer reconstruction.
func (p Polygon) EnclosesPoint(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		x, y := float64(pt.X), float64(pt.Y)
		if (yi > y) != (yj > y) {
			xint := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// EnclosesPolygon reports whether every vertex of other lies inside p.
// Used to order loops outer-first and to nest holes under their outer
// contour.
func (p Polygon) EnclosesPolygon(other Polygon) bool {
	for _, v := range other {
		if !p.EnclosesPoint(v) {
			return false
		}
	}
	return true
}

// Centroid returns the area-weighted centroid of p. Falls back to the
// vertex average for degenerate (near-zero-area) polygons.
func (p Polygon) Centroid() Point {
	area := p.Area()
	if math.Abs(area) < 1e-6 {
		return p.vertexAverage()
	}
	var cx, cy float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := float64(p[i].X*p[j].Y - p[j].X*p[i].Y)
		cx += (float64(p[i].X) + float64(p[j].X)) * cross
		cy += (float64(p[i].Y) + float64(p[j].Y)) * cross
	}
	cx /= 6 * area
	cy /= 6 * area
	return Point{Unit(math.Round(cx)), Unit(math.Round(cy))}
}

func (p Polygon) vertexAverage() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sx, sy int64
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	return Point{sx / int64(len(p)), sy / int64(len(p))}
}

// NearestVertexTo returns the index of the vertex of p closest to pt,
// used by the nearest-neighbor travel-order heuristics.
func (p Polygon) NearestVertexTo(pt Point) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, v := range p {
		d := v.DistanceTo(pt)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
