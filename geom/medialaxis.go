package geom

// MedialAxisResult is the skeleton of a region at a target width: open
// branches as Polylines, plus any fully closed branch (a thin loop with
// no free ends, e.g. a ring-shaped thin wall) as a Polygon.
type MedialAxisResult struct {
	Polylines []Polyline
	Polygons  []Polygon
}

// medialAxisSamples controls the resolution of the approximate skeleton
// traced between the two extremal points of a thin region.
const medialAxisSamples = 24

// MedialAxis returns the skeleton of e suitable for tracing with a
// single variable-width extrusion pass. Regions with a hole are treated
// as a closed thin loop (the hole's largest contour paired against the
// outer contour); regions without holes are treated as an open sliver
// and traced between the two contour points farthest apart.
//
// This is a practical approximation, not an exact Voronoi medial axis:
// it pairs points by arc-length position along the two sides of the
// sliver rather than solving for equidistant centers. It is accurate
// for the roughly-parallel-sided slivers SurfaceBuilder hands it and
// degrades gracefully (a wavier centerline) on more irregular shapes.
func MedialAxis(e ExPolygon, maxWidth Unit) MedialAxisResult {
	if len(e.Holes) > 0 {
		hole := largestHole(e.Holes)
		return MedialAxisResult{Polygons: []Polygon{closedCenterline(e.Contour, hole)}}
	}
	if len(e.Contour) < 4 {
		return MedialAxisResult{}
	}
	return MedialAxisResult{Polylines: []Polyline{openCenterline(e.Contour)}}
}

func largestHole(holes []Polygon) Polygon {
	best := holes[0]
	bestArea := -best.Area() // holes have negative area; compare magnitude
	for _, h := range holes[1:] {
		a := -h.Area()
		if a > bestArea {
			bestArea = a
			best = h
		}
	}
	return best
}

// farthestPair returns the indices of the two vertices of p that are
// farthest apart, the two "ends" of an elongated sliver.
func farthestPair(p Polygon) (int, int) {
	bi, bj := 0, 1
	best := -1.0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			d := p[i].DistanceTo(p[j])
			if d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// chainForward returns the vertices of p walking forward from index from
// to index to inclusive, wrapping around as needed.
func chainForward(p Polygon, from, to int) Polygon {
	n := len(p)
	var out Polygon
	for i := from; ; i = (i + 1) % n {
		out = append(out, p[i])
		if i == to {
			break
		}
	}
	return out
}

// arcLengthSample returns n points evenly spaced by arc length along the
// open chain, including both endpoints.
func arcLengthSample(chain Polygon, n int) []Point {
	if len(chain) == 1 {
		out := make([]Point, n)
		for i := range out {
			out[i] = chain[0]
		}
		return out
	}
	total := 0.0
	segLen := make([]float64, len(chain)-1)
	for i := 1; i < len(chain); i++ {
		segLen[i-1] = chain[i-1].DistanceTo(chain[i])
		total += segLen[i-1]
	}
	out := make([]Point, n)
	for k := 0; k < n; k++ {
		target := total * float64(k) / float64(n-1)
		acc := 0.0
		seg := 0
		for seg < len(segLen) && acc+segLen[seg] < target {
			acc += segLen[seg]
			seg++
		}
		if seg >= len(segLen) {
			out[k] = chain[len(chain)-1]
			continue
		}
		var t float64
		if segLen[seg] > 0 {
			t = (target - acc) / segLen[seg]
		}
		a, b := chain[seg], chain[seg+1]
		out[k] = Point{
			X: a.X + Unit(float64(b.X-a.X)*t),
			Y: a.Y + Unit(float64(b.Y-a.Y)*t),
		}
	}
	return out
}

func openCenterline(contour Polygon) Polyline {
	i, j := farthestPair(contour)
	chainA := chainForward(contour, i, j)
	chainB := chainForward(contour, j, i).Reversed()

	samplesA := arcLengthSample(chainA, medialAxisSamples)
	samplesB := arcLengthSample(chainB, medialAxisSamples)

	out := make(Polyline, medialAxisSamples)
	for k := 0; k < medialAxisSamples; k++ {
		out[k] = Midpoint(samplesA[k], samplesB[k])
	}
	return out
}

func closedCenterline(outer, hole Polygon) Polygon {
	samplesOuter := arcLengthSample(append(outer.Clone(), outer[0]), medialAxisSamples)
	// Holes wind clockwise; walk it in the reverse (counter-clockwise)
	// direction so it samples in the same angular sense as the outer
	// contour.
	holeRev := hole.Reversed()
	samplesHole := arcLengthSample(append(holeRev.Clone(), holeRev[0]), medialAxisSamples)

	out := make(Polygon, medialAxisSamples)
	for k := 0; k < medialAxisSamples; k++ {
		out[k] = Midpoint(samplesOuter[k], samplesHole[k])
	}
	return out
}
