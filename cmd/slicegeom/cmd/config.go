package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicegeom/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a settings file",
	Long: `Create a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'slicegeom.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "slicegeom.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(config.Save(config.Default(), path))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
