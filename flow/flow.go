// Package flow describes nozzle extrusion geometry: the deposited bead
// width and the center-to-center spacing used to place adjacent beads.
package flow

import "github.com/arl/slicegeom/geom"

// Role distinguishes the two flows a Region carries.
type Role int

const (
	// RolePerimeter is used for perimeter loops, thin walls and gap fill.
	RolePerimeter Role = iota
	// RoleInfill is used for solid and sparse fill.
	RoleInfill
)

// Flow bundles a bead's printable geometry, in both millimeters and
// scaled Units. Spacing is always < Width because adjacent extrusions
// overlap: a round bead of diameter Width deposited at Spacing center
// distance leaves no gap and no excess squeeze.
//
// [Limit: Width > 0] [Units: mm, and scaled Units for the *Scaled fields]
type Flow struct {
	Width   float64
	Spacing float64
	Height  float64
	Role    Role

	ScaledWidth   geom.Unit
	ScaledSpacing geom.Unit
}

// New builds a Flow from a bead width, layer height and role, deriving
// spacing from a stadium-shaped bead cross-section: spacing is width
// minus height*(1 - pi/4), the area its rounded ends leave unfilled,
// falling back to 0.9*width when that is not positive.
func New(width, height float64, role Role) Flow {
	spacing := width - height*(1-0.785398163) // width minus the rounded-corner deficit of a stadium cross-section
	if spacing <= 0 {
		spacing = width * 0.9
	}
	return Flow{
		Width:         width,
		Spacing:       spacing,
		Height:        height,
		Role:          role,
		ScaledWidth:   geom.Scale(width),
		ScaledSpacing: geom.Scale(spacing),
	}
}

// Clone returns a copy of f with a different width (spacing and scaled
// fields are recomputed), used by gap fill to try several trial widths
// without mutating the region's configured flow.
func (f Flow) Clone(width float64) Flow {
	return New(width, f.Height, f.Role)
}
