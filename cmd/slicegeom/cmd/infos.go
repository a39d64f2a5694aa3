package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicegeom/buildctx"
	"github.com/arl/slicegeom/geom"
	"github.com/arl/slicegeom/loopmerge"
)

// infosCmd represents the infos command.
var infosCmd = &cobra.Command{
	Use:   "infos FIXTURE",
	Short: "show geometry statistics for a cross-section fixture",
	Long: `Read a synthetic cross-section fixture (YAML), merge its raw loops
into surfaces and print area/count statistics on standard output.`,
	Run: doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: slicegeom infos FIXTURE")
		return
	}
	f, err := loadFixture(args[0])
	check(err)

	ctx := buildctx.New(true, true)
	surfaces := loopmerge.Merge(ctx, f.polygons())

	var totalArea float64
	var holeCount int
	for _, s := range surfaces {
		totalArea += s.ExPolygon.Area()
		holeCount += len(s.ExPolygon.Holes)
	}

	fmt.Printf("surfaces:    %d\n", len(surfaces))
	fmt.Printf("holes:       %d\n", holeCount)
	fmt.Printf("total area:  %.4f mm^2\n", totalArea/float64(geom.SCALINGFACTOR)/float64(geom.SCALINGFACTOR))
	for _, m := range ctx.Messages() {
		fmt.Printf("[%s] %s\n", m.Category, m.Text)
	}
	fmt.Printf("loop-merge time: %s\n", ctx.AccumulatedTime(buildctx.StageLoopMerge))
}
