package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/config"
	"github.com/arl/slicegeom/fillpattern"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/layerregion"
)

var runConfigPath string

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run FIXTURE",
	Short: "run the full pipeline against a cross-section fixture",
	Long: `Run LoopMerger, SurfaceBuilder, PerimeterGenerator, FillClassifier
and BridgeDetector against a synthetic cross-section fixture (YAML),
using the settings in --config (or defaults), and report the resulting
slice, perimeter, thin fill, thin wall and fill surface counts.`,
	Run: doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "settings file (defaults used if empty)")
}

func doRun(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: slicegeom run FIXTURE")
		return
	}
	f, err := loadFixture(args[0])
	check(err)

	cfg := config.Default()
	if runConfigPath != "" {
		cfg, err = config.Load(runConfigPath)
		check(err)
	}

	layer := &layerregion.Layer{
		ID:     f.LayerID,
		Height: geom.Scale(f.LayerHeightMM),
	}
	region := layerregion.Region{
		PerimeterFlow: f.perimeterFlow(),
		InfillFlow:    f.infillFlow(),
		Config:        cfg,
	}
	lr := layerregion.New(layer, region, f.polygons())

	ctx := buildctx.New(true, true)
	result, err := layerregion.Slice(ctx, lr, fillpattern.Rectilinear{})
	check(err)

	fmt.Printf("slices:      %d\n", len(result.Slices))
	fmt.Printf("perimeters:  %d\n", len(result.Loops))
	fmt.Printf("thin fills:  %d\n", len(result.ThinFills))
	fmt.Printf("thin walls:  %d\n", len(result.ThinWalls))
	fmt.Printf("fill surfaces: %d\n", len(result.Fill))
	for _, m := range ctx.Messages() {
		fmt.Printf("[%s] %s\n", m.Category, m.Text)
	}
}
