package geom

import "testing"

func TestOffsetGrowsCCW(t *testing.T) {
	p := square(0, 0, Scale(10))
	out := Offset([]Polygon{p}, Scale(1))
	if len(out) != 1 {
		t.Fatalf("Offset(+1) = %d polygons, want 1", len(out))
	}
	if out[0].Area() <= p.Area() {
		t.Errorf("outward offset area %v should exceed original %v", out[0].Area(), p.Area())
	}
}

func TestOffsetShrinksToCollapse(t *testing.T) {
	p := square(0, 0, Scale(1))
	out := Offset([]Polygon{p}, -Scale(10))
	if len(out) != 0 {
		t.Errorf("Offset(-10) on a 1mm square = %d polygons, want 0 (collapsed)", len(out))
	}
}

func TestSafetyOffsetGrowsSlightly(t *testing.T) {
	p := square(0, 0, Scale(10))
	out := SafetyOffset([]Polygon{p})
	if len(out) != 1 {
		t.Fatalf("SafetyOffset = %d polygons, want 1", len(out))
	}
	if out[0].Area() <= p.Area() {
		t.Errorf("safety offset should grow area slightly")
	}
}

// A positive delta must grow the solid material uniformly: the outer
// (CCW) contour expands outward and a (CW) hole shrinks, since growing
// material into a hole means the hole's boundary retreats.
func TestOffsetGrowsMaterialUniformlyAroundAHole(t *testing.T) {
	outer := square(0, 0, Scale(20))
	hole := square(Scale(5), Scale(5), Scale(5)).Reversed() // CW
	holeAreaBefore := hole.Area()                           // negative

	out := Offset([]Polygon{outer, hole}, Scale(1))
	if len(out) != 2 {
		t.Fatalf("Offset(+1) on outer+hole = %d polygons, want 2", len(out))
	}

	var gotOuter, gotHole Polygon
	for _, p := range out {
		if p.IsCounterClockwise() {
			gotOuter = p
		} else {
			gotHole = p
		}
	}
	if gotOuter == nil || gotHole == nil {
		t.Fatalf("expected one CCW outer and one CW hole, got %d CCW/CW mix", len(out))
	}
	if gotOuter.Area() <= outer.Area() {
		t.Errorf("outer contour should grow outward: got area %v, want > %v", gotOuter.Area(), outer.Area())
	}
	// a shrunk hole encloses less area; since hole area is negative, that
	// means its magnitude decreases, i.e. its signed area moves toward 0.
	if gotHole.Area() <= holeAreaBefore {
		t.Errorf("hole should shrink (material grows into it): got signed area %v, want > %v", gotHole.Area(), holeAreaBefore)
	}
}

func TestOffsetExShrinksHoleOnPositiveDelta(t *testing.T) {
	ex := ExPolygon{
		Contour: square(0, 0, Scale(20)),
		Holes:   []Polygon{square(Scale(5), Scale(5), Scale(5)).Reversed()},
	}
	out := ex.OffsetEx(Scale(1))
	if len(out) != 1 {
		t.Fatalf("OffsetEx(+1) = %d expolygons, want 1", len(out))
	}
	if len(out[0].Holes) != 1 {
		t.Fatalf("expected the grown expolygon to keep its hole, got %d holes", len(out[0].Holes))
	}
	if out[0].Holes[0].Area() <= ex.Holes[0].Area() {
		t.Errorf("growing material should shrink the hole: got signed area %v, want > %v",
			out[0].Holes[0].Area(), ex.Holes[0].Area())
	}
	if out[0].Contour.Area() <= ex.Contour.Area() {
		t.Errorf("growing material should grow the outer contour: got area %v, want > %v",
			out[0].Contour.Area(), ex.Contour.Area())
	}
}
