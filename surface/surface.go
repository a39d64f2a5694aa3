// Package surface defines the Surface entity: an ExPolygon tagged with a
// fill role, mutated in place as later pipeline stages refine that role.
package surface

import "github.com/arl/slicegeom/geom"

// Type classifies how a Surface's interior should be filled.
type Type int

const (
	// Internal is material with more material above and below it across
	// layers; filled at the configured sparse density.
	Internal Type = iota
	// InternalSolid is an Internal surface too small to benefit from
	// sparse fill, promoted to solid by FillClassifier.
	InternalSolid
	// Top is the uppermost solid layer under open air above.
	Top
	// Bottom is unsupported material printed over open air below.
	Bottom
)

func (t Type) String() string {
	switch t {
	case Internal:
		return "internal"
	case InternalSolid:
		return "internal-solid"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Surface is an ExPolygon plus its fill classification. BridgeAngle is
// only meaningful when HasBridgeAngle is true (a bridge whose supporting
// edges yielded a determinate direction; see the bridge package).
type Surface struct {
	ExPolygon geom.ExPolygon
	Type      Type

	BridgeAngle    float64 // degrees, normalized to [0, 360)
	HasBridgeAngle bool

	// AdditionalInnerPerimeters lets per-region overrides (e.g. a solid
	// infill region printed with extra walls) add loops beyond the
	// configured perimeter count, without a global config mutation.
	AdditionalInnerPerimeters int
}

// Surfaces is an ordered collection of Surface, the currency FillClassifier
// and BridgeDetector operate on.
type Surfaces []Surface

// Clone returns a shallow copy of ss with an independent backing array,
// so FillClassifier can retype surfaces in the copy without mutating its
// caller's slice.
func (ss Surfaces) Clone() Surfaces {
	out := make(Surfaces, len(ss))
	copy(out, ss)
	return out
}

// FilterByType returns the surfaces of ss matching any of the given types.
func (ss Surfaces) FilterByType(types ...Type) Surfaces {
	want := make(map[Type]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out Surfaces
	for _, s := range ss {
		if want[s.Type] {
			out = append(out, s)
		}
	}
	return out
}

// Polygons flattens every surface's ExPolygon to the kernel's flat
// polygon representation.
func (ss Surfaces) Polygons() []geom.Polygon {
	var out []geom.Polygon
	for _, s := range ss {
		out = append(out, s.ExPolygon.Polygons()...)
	}
	return out
}
