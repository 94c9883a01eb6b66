package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goflex/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	logger   *zap.Logger
	logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "goflex",
	Short: "Flexural Rigidity Calculator for Composite Sections",
	Long: `goflex - Go Flexural Rigidity Calculator

A CLI tool that computes the flexural rigidity (EI) of layered composite
cross-sections with the transformed-section method.

A slice is a full-width top layer plus any number of braces. Each brace
stacks up to three segments (bottom, middle, top) of rectangular,
triangular or parabolic shape with their own modulus. Every segment is
transformed to the modulus of the top layer and the pieces are combined
with the parallel-axis theorem.

Units: lengths in mm, moduli in kN/mm² (scaled ×1000 to N/mm²),
EI reported in N·mm² and N·m².`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		logLevel.SetLevel(level)

		if logger != nil {
			return nil
		}

		config := zap.NewProductionConfig()
		config.Level = logLevel
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goflex v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Flexural Rigidity Calculator                         ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Computes EI of composite slices with the transformed-section method.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Shape properties (rectangle, triangle, parabolic)")
		fmt.Fprintln(out, "    • Brace transformation with modular ratios")
		fmt.Fprintln(out, "    • Slice composition: centroid, transformed I, EI")
		fmt.Fprintln(out, "    • Rotation check against a limit (NSCP load combinations)")
		fmt.Fprintln(out, "    • ASCII, SVG, PNG and PDF section diagrams")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goflex --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
