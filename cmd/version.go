package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goflex/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goflex",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, version.Build())
		fmt.Fprintln(out, "Flexural rigidity of composite sections (transformed-section method)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
