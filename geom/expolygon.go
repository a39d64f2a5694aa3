package geom

import (
	"errors"
	"fmt"

	"github.com/arl/assertgo"
)

// ExPolygon is one outer counter-clockwise contour plus zero or more
// clockwise holes, all strictly inside the outer contour and pairwise
// non-overlapping.
type ExPolygon struct {
	Contour Polygon
	Holes   []Polygon
}

// ExPolygons is a set of ExPolygon, the usual unit of currency between
// pipeline stages.
type ExPolygons []ExPolygon

// Validate checks the well-formedness invariant: one CCW outer contour,
// all holes CW and strictly inside it, holes pairwise disjoint. It never
// panics; it is the boundary between the kernel's internal debug
// assertions and the caller-facing error the scheduler sees on a fatal
// Boolean-kernel failure (see the core's error handling design).
func (e ExPolygon) Validate() error {
	if len(e.Contour) < 3 {
		return fmt.Errorf("expolygon: outer contour has %d vertices, want >= 3", len(e.Contour))
	}
	if !e.Contour.IsCounterClockwise() {
		return errors.New("expolygon: outer contour is not counter-clockwise")
	}
	for i, h := range e.Holes {
		if len(h) < 3 {
			return fmt.Errorf("expolygon: hole %d has %d vertices, want >= 3", i, len(h))
		}
		if h.IsCounterClockwise() {
			return fmt.Errorf("expolygon: hole %d is not clockwise", i)
		}
		if !e.Contour.EnclosesPolygon(h) {
			return fmt.Errorf("expolygon: hole %d is not strictly inside the outer contour", i)
		}
	}
	for i := range e.Holes {
		for j := i + 1; j < len(e.Holes); j++ {
			if e.Holes[i].EnclosesPolygon(e.Holes[j]) || e.Holes[j].EnclosesPolygon(e.Holes[i]) {
				return fmt.Errorf("expolygon: holes %d and %d overlap", i, j)
			}
		}
	}
	return nil
}

// Area returns the net area of e: the outer contour's area minus its
// holes' areas.
func (e ExPolygon) Area() float64 {
	area := e.Contour.Area()
	for _, h := range e.Holes {
		area += h.Area() // holes are already negative-area (CW)
	}
	return area
}

// Polygons flattens e to its flat polygon representation: the outer
// contour (CCW) followed by its holes (CW). This is the representation
// the Boolean kernel folds over internally.
func (e ExPolygon) Polygons() []Polygon {
	out := make([]Polygon, 0, 1+len(e.Holes))
	out = append(out, e.Contour)
	out = append(out, e.Holes...)
	return out
}

// ToPolygons flattens a whole ExPolygons set to its flat polygon soup.
func (set ExPolygons) ToPolygons() []Polygon {
	var out []Polygon
	for _, e := range set {
		out = append(out, e.Polygons()...)
	}
	return out
}

// OffsetEx offsets e as a whole by delta and re-unions the result, so
// that an inward offset that splits the contour into several pieces (or
// merges a hole into the outer boundary) comes back out as a
// well-formed ExPolygons set rather than a single possibly-invalid
// ExPolygon. Offset is already winding-aware, so applying delta to e's
// flattened contour+holes grows or shrinks the solid material uniformly.
func (e ExPolygon) OffsetEx(delta Unit) ExPolygons {
	return UnionEx(Offset(e.Polygons(), delta))
}

// assertWellFormed panics (debug builds only, via assertgo) when e is not
// well-formed. Used internally at stage boundaries to catch kernel bugs
// early, without imposing the cost of Validate's full error message on
// every call in release builds.
func assertWellFormed(e ExPolygon) {
	assert.True(e.Validate() == nil, "expolygon is not well-formed: %v", e.Validate())
}
