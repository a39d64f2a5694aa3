// Package extrusion defines the printable output of the perimeter and
// fill stages: paths and loops tagged with a role, flow spacing and
// height.
package extrusion

import "github.com/arl/slicegeom/geom"

// Role tags what an ExtrusionPath or ExtrusionLoop is for, driving
// downstream speed and cooling decisions that are out of this core's
// scope.
type Role int

const (
	RoleExternalPerimeter Role = iota
	RolePerimeter
	RoleContourInternalPerimeter
	RoleSolidFill
	RoleGapFill
)

func (r Role) String() string {
	switch r {
	case RoleExternalPerimeter:
		return "external-perimeter"
	case RolePerimeter:
		return "perimeter"
	case RoleContourInternalPerimeter:
		return "contour-internal-perimeter"
	case RoleSolidFill:
		return "solid-fill"
	case RoleGapFill:
		return "gap-fill"
	default:
		return "unknown"
	}
}

// Path is an open polyline extrusion: perimeters that were split to
// become a path, thin walls, and gap fill all end up as Paths.
type Path struct {
	Polyline     geom.Polyline
	Role         Role
	FlowSpacing  geom.Unit
	Height       geom.Unit
}

// Loop is a closed-polygon extrusion: a perimeter or hole loop before it
// has been split into a travel path.
type Loop struct {
	Polygon     geom.Polygon
	Role        Role
	FlowSpacing geom.Unit
	Height      geom.Unit
}

// ToPath converts l to an open Path by splitting it at its first point,
// the conversion every ExtrusionLoop eventually undergoes before being
// scheduled into a travel move.
func (l Loop) ToPath() Path {
	return Path{
		Polyline:    geom.Polyline(l.Polygon).SplitAtFirst(),
		Role:        l.Role,
		FlowSpacing: l.FlowSpacing,
		Height:      l.Height,
	}
}

// Printable reports whether l is large enough to be worth extruding at
// the given bead width: a loop narrower (in perimeter) than about one
// bead diameter would just deposit a blob, not trace a shape.
func (l Loop) Printable(width geom.Unit) bool {
	return len(l.Polygon) >= 3 && l.Polygon.Length() >= float64(width)
}
