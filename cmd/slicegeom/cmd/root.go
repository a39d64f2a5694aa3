package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "slicegeom",
	Short: "per-layer slicing geometry core",
	Long: `slicegeom drives the per-layer, per-region slicing geometry core:
	- create a settings file (YAML),
	- run the full pipeline against a synthetic cross-section fixture,
	- print geometry statistics for an ExPolygon set.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
