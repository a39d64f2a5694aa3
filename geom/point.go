// Package geom implements the scaled integer-coordinate geometry kernel:
// points, polygons, polylines, expolygons, polygon Boolean algebra,
// offsetting and medial axis extraction.
//
// All coordinates are signed integers in a fixed-point unit scaled from
// millimeters by SCALINGFACTOR, so that Boolean operations never suffer
// the instability of floating point arithmetic on near-coincident edges.
package geom

import "math"

// Unit is a scaled integer coordinate or distance. One Unit is
// 1/SCALINGFACTOR millimeters.
type Unit = int64

// SCALINGFACTOR converts millimeters to Units on ingress, and Units back to
// millimeters (by division) on egress. Areas require two multiplications.
const SCALINGFACTOR Unit = 1000000

// SCALEDRESOLUTION is the default simplification tolerance applied to
// offset results, in Units.
const SCALEDRESOLUTION Unit = SCALINGFACTOR / 10000 * 125 // ~0.0125mm

// SMALLPERIMETERLENGTH is the perimeter length, in Units, below which a
// loop is treated as "small" by speed/role heuristics upstream of this
// package.
const SMALLPERIMETERLENGTH Unit = 6505000 // ~6.5mm

// Scale converts a millimeter value to Units.
func Scale(mm float64) Unit {
	return Unit(math.Round(mm * float64(SCALINGFACTOR)))
}

// ScaleArea converts a square-millimeter value to squared Units.
func ScaleArea(mm2 float64) Unit {
	return Unit(math.Round(mm2 * float64(SCALINGFACTOR) * float64(SCALINGFACTOR)))
}

// Unscale converts a Units value back to millimeters.
func Unscale(u Unit) float64 {
	return float64(u) / float64(SCALINGFACTOR)
}

// Point is a 2D point with scaled integer coordinates.
type Point struct {
	X, Y Unit
}

// Pt builds a Point.
func Pt(x, y Unit) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scaled returns p scaled by f (f is unitless; used for offset math where
// intermediate precision needs a float pass).
func (p Point) Scaled(f float64) Point {
	return Point{Unit(math.Round(float64(p.X) * f)), Unit(math.Round(float64(p.Y) * f))}
}

// Eq reports whether p and q are the same point.
func (p Point) Eq(q Point) bool { return p.X == q.X && p.Y == q.Y }

// DistanceTo returns the Euclidean distance between p and q, in Units.
func (p Point) DistanceTo(q Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Cross returns the 2D cross product (p-o) x (q-o), used for orientation
// and winding tests. Positive means q is counter-clockwise from p as seen
// from o.
func Cross(o, p, q Point) int64 {
	return (p.X-o.X)*(q.Y-o.Y) - (p.Y-o.Y)*(q.X-o.X)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Direction returns the angle, in radians in [0, 2*pi), of the vector q-p.
func Direction(p, q Point) float64 {
	a := math.Atan2(float64(q.Y-p.Y), float64(q.X-p.X))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Line is a directed segment, the basic unit a slicing plane produces.
type Line struct {
	A, B Point
}

// Direction returns the angle of the line, see Direction(A, B).
func (l Line) Direction() float64 { return Direction(l.A, l.B) }

// Midpoint returns the line's midpoint.
func (l Line) Midpoint() Point { return Midpoint(l.A, l.B) }

// Length returns the line's length in Units.
func (l Line) Length() float64 { return l.A.DistanceTo(l.B) }
