package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goflex/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage slice configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the reference slice as a configuration file",
	Long: `Write the reference slice (500 mm span, 4 mm top layer, two braces) to a
configuration file. The format follows the extension: .json writes JSON,
anything else YAML.

Examples:
  goflex config init
  goflex config init deck.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "goflex.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(path, config.DefaultConfig()); err != nil {
			return err
		}
		logger.Info("Configuration written", zap.String("file", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}
