// Package layerregion assembles the per-(layer, region) pipeline:
// LoopMerger -> SurfaceBuilder -> PerimeterGenerator -> FillClassifier
// -> BridgeDetector, behind the Layer/Region collaborators the spec's
// data model calls for.
package layerregion

import (
	"github.com/arl/slicegeom/bridge"
	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/extrusion"
	"github.com/arl/slicegeom/fill"
	"github.com/arl/slicegeom/fillpattern"
	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/perimeter"
	"github.com/arl/slicegeom/surface"
	"github.com/arl/slicegeom/surfacebuilder"
)

// Layer is the weak back-reference target every LayerRegion reads from
// without owning: the scheduler constructs and owns Layers, and
// guarantees a Layer outlives every LayerRegion that points to it.
type Layer struct {
	ID     int
	Z      float64
	Height geom.Unit

	// SolidLayerContext records how many consecutive top/bottom solid
	// layers the external scheduler has already resolved for this
	// layer's neighbors. It is carried for the scheduler only: no stage
	// of this module reads or produces it (multi-layer top/bottom
	// propagation is a non-goal).
	SolidLayerContext SolidLayerContext
}

// SolidLayerContext is the scheduler-supplied top/bottom neighbor
// summary. FillClassifier and BridgeDetector neither read nor compute
// it; they see only the Top/Bottom types already on their surfaces.
type SolidLayerContext struct {
	TopNeighborsSolid    int
	BottomNeighborsSolid int
}

// Region bundles the material/config collaborators a LayerRegion needs:
// its flows, its config bundle, and any per-surface perimeter override.
type Region struct {
	PerimeterFlow             flow.Flow
	InfillFlow                flow.Flow
	Config                    *config.Config
	AdditionalInnerPerimeters int
}

// LayerRegion is a non-owning handle binding one Region's raw loops to
// one Layer, the unit the external scheduler parallelizes over.
type LayerRegion struct {
	layer  *Layer
	region Region
	loops  []geom.Polygon

	// InitialSurfaceType is applied to SurfaceBuilder's output before
	// fill classification -- the Top/Bottom determination from
	// neighboring layers is itself the scheduler's job (see Layer's
	// doc comment), so the caller hands it in here rather than this
	// package inferring it from geometry it does not have.
	InitialSurfaceType surface.Type
}

// New builds a LayerRegion. layer must outlive lr.
func New(layer *Layer, region Region, loops []geom.Polygon) *LayerRegion {
	return &LayerRegion{layer: layer, region: region, loops: loops, InitialSurfaceType: surface.Internal}
}

// Layer returns the non-owning Layer handle.
func (lr *LayerRegion) Layer() *Layer { return lr.layer }

// Result bundles every pipeline stage's output for one LayerRegion.
type Result struct {
	Slices    surface.Surfaces
	Loops     []extrusion.Loop
	ThinFills []extrusion.Path
	ThinWalls []extrusion.Path
	Fill      surface.Surfaces
}

// Slice runs the full pipeline for lr. A Boolean-kernel invariant
// violation is the only failure mode that surfaces as an error (every
// other degenerate condition in the spec's error kinds is a silent
// drop); in debug builds the underlying assertgo checks would already
// have panicked before this validation runs.
func Slice(ctx *buildctx.Context, lr *LayerRegion, fillPattern fillpattern.FillPattern) (Result, error) {
	sb := surfacebuilder.Build(ctx, lr.loops, lr.region.PerimeterFlow)
	for _, s := range sb.Slices {
		if err := s.ExPolygon.Validate(); err != nil {
			return Result{}, err
		}
	}

	for i := range sb.Slices {
		if sb.Slices[i].Type == surface.Internal {
			sb.Slices[i].Type = lr.InitialSurfaceType
			sb.Slices[i].AdditionalInnerPerimeters = lr.region.AdditionalInnerPerimeters
		}
	}

	pr := perimeter.Build(ctx, sb, lr.region.Config, lr.region.PerimeterFlow, lr.layer.Height, lr.layer.ID, fillPattern)

	classified := fill.Build(ctx, pr.FillSurfaces, lr.region.Config)

	bridged := bridge.Build(ctx, classified, sb.Slices, lr.region.Config, lr.region.InfillFlow, lr.layer.ID)

	return Result{
		Slices:    sb.Slices,
		Loops:     pr.Loops,
		ThinFills: pr.ThinFills,
		ThinWalls: pr.ThinWalls,
		Fill:      bridged,
	}, nil
}
