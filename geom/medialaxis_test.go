package geom

import "testing"

func TestMedialAxisOpenSliver(t *testing.T) {
	// a 1x20mm sliver
	sliver := Polygon{
		Pt(0, 0),
		Pt(Scale(20), 0),
		Pt(Scale(20), Scale(1)),
		Pt(0, Scale(1)),
	}
	res := MedialAxis(ExPolygon{Contour: sliver}, Scale(0.4))
	if len(res.Polylines) != 1 {
		t.Fatalf("MedialAxis(sliver) = %d polylines, want 1", len(res.Polylines))
	}
	pl := res.Polylines[0]
	if len(pl) != medialAxisSamples {
		t.Fatalf("MedialAxis(sliver) produced %d samples, want %d", len(pl), medialAxisSamples)
	}
	// every skeleton point should stay within the sliver's bounds; the
	// interior samples sit on its centerline (y = 0.5mm), the two end
	// samples at opposite corners
	for _, p := range pl {
		if p.Y < 0 || p.Y > Scale(1) {
			t.Errorf("skeleton point %v out of sliver bounds", p)
		}
	}
}
