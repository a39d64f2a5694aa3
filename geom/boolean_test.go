package geom

import "testing"

func TestUnionExDisjoint(t *testing.T) {
	a := square(0, 0, Scale(10))
	b := square(Scale(100), Scale(100), Scale(10))
	got := UnionEx([]Polygon{a, b})
	if len(got) != 2 {
		t.Fatalf("UnionEx(disjoint) = %d expolygons, want 2", len(got))
	}
}

func TestUnionExOverlapping(t *testing.T) {
	a := square(0, 0, Scale(10))
	b := square(Scale(5), Scale(5), Scale(10))
	got := UnionEx([]Polygon{a, b})
	if len(got) != 1 {
		t.Fatalf("UnionEx(overlapping) = %d expolygons, want 1", len(got))
	}
	if got[0].Area() <= a.Area() {
		t.Errorf("union area %v should exceed either input's area %v", got[0].Area(), a.Area())
	}
}

func TestDiffExHole(t *testing.T) {
	outer := square(0, 0, Scale(20))
	inner := square(Scale(5), Scale(5), Scale(5))
	got := DiffEx([]Polygon{outer}, []Polygon{inner}, true)
	if len(got) != 1 {
		t.Fatalf("DiffEx(hole) = %d expolygons, want 1", len(got))
	}
	if len(got[0].Holes) != 1 {
		t.Fatalf("DiffEx(hole) produced %d holes, want 1", len(got[0].Holes))
	}
}

func TestDiffExFullyConsumed(t *testing.T) {
	a := square(0, 0, Scale(10))
	got := DiffEx([]Polygon{a}, []Polygon{square(Scale(-5), Scale(-5), Scale(20))}, false)
	if len(got) != 0 {
		t.Fatalf("DiffEx(fully consumed) = %d expolygons, want 0", len(got))
	}
}

func TestIntersectionExOverlapping(t *testing.T) {
	a := square(0, 0, Scale(10))
	b := square(Scale(5), Scale(5), Scale(10))
	got := IntersectionEx([]Polygon{a}, []Polygon{b})
	if len(got) != 1 {
		t.Fatalf("IntersectionEx = %d expolygons, want 1", len(got))
	}
}
