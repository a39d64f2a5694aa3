package cmd

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/slicegeom/flow"
	"github.com/arl/slicegeom/geom"
)

// fixtureFlow describes one Flow's millimeter inputs in a fixture file.
type fixtureFlow struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// fixture is a synthetic per-layer, per-region cross-section: a set of
// raw closed loops (in millimeters, already oriented per the winding
// convention) plus the flow/layer metadata the pipeline needs. It is
// NOT mesh-slicing output -- this CLI never intersects a mesh with a
// plane, it only drives the core from hand- or test-authored loops.
type fixture struct {
	Loops         [][][2]float64 `yaml:"loops"`
	PerimeterFlow fixtureFlow    `yaml:"perimeter_flow"`
	InfillFlow    fixtureFlow    `yaml:"infill_flow"`
	LayerHeightMM float64        `yaml:"layer_height_mm"`
	LayerID       int            `yaml:"layer_id"`
}

func loadFixture(path string) (*fixture, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	if len(f.Loops) == 0 {
		return nil, fmt.Errorf("fixture: %s defines no loops", path)
	}
	return f, nil
}

func (f *fixture) polygons() []geom.Polygon {
	out := make([]geom.Polygon, 0, len(f.Loops))
	for _, loop := range f.Loops {
		p := make(geom.Polygon, 0, len(loop))
		for _, xy := range loop {
			p = append(p, geom.Pt(geom.Scale(xy[0]), geom.Scale(xy[1])))
		}
		out = append(out, p)
	}
	return out
}

func (f *fixture) perimeterFlow() flow.Flow {
	return flow.New(f.PerimeterFlow.Width, f.LayerHeightMM, flow.RolePerimeter)
}

func (f *fixture) infillFlow() flow.Flow {
	return flow.New(f.InfillFlow.Width, f.LayerHeightMM, flow.RoleInfill)
}
