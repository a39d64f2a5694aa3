package geom

import "testing"

func square(x0, y0, size Unit) Polygon {
	return Polygon{
		Pt(x0, y0),
		Pt(x0+size, y0),
		Pt(x0+size, y0+size),
		Pt(x0, y0+size),
	}
}

func TestPolygonIsCounterClockwise(t *testing.T) {
	ttable := []struct {
		name string
		p    Polygon
		want bool
	}{
		{"ccw square", square(0, 0, 10), true},
		{"cw square", square(0, 0, 10).Reversed(), false},
	}
	for _, tt := range ttable {
		if got := tt.p.IsCounterClockwise(); got != tt.want {
			t.Errorf("%s: IsCounterClockwise() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPolygonArea(t *testing.T) {
	p := square(0, 0, Scale(10))
	got := p.Area()
	want := float64(Scale(10) * Scale(10))
	if got != want {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestPolygonEnclosesPoint(t *testing.T) {
	p := square(0, 0, Scale(10))
	ttable := []struct {
		pt   Point
		want bool
	}{
		{Pt(Scale(5), Scale(5)), true},
		{Pt(Scale(15), Scale(5)), false},
		{Pt(Scale(-1), Scale(5)), false},
	}
	for _, tt := range ttable {
		if got := p.EnclosesPoint(tt.pt); got != tt.want {
			t.Errorf("EnclosesPoint(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestPolygonEnclosesPolygon(t *testing.T) {
	outer := square(0, 0, Scale(20))
	inner := square(Scale(5), Scale(5), Scale(5))
	if !outer.EnclosesPolygon(inner) {
		t.Errorf("expected outer to enclose inner")
	}
	if outer.EnclosesPolygon(square(Scale(15), Scale(15), Scale(10))) {
		t.Errorf("expected outer not to enclose a polygon crossing its boundary")
	}
}
