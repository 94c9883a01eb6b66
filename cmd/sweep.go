package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goflex/internal/config"
	"github.com/alexiusacademia/goflex/internal/diagram"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxSweepPoints bounds the number of slice computations of one sweep
const maxSweepPoints = 1000

var (
	sweepOpts    sliceFlags
	sweepMaxTilt float64
	sweepStep    float64
	sweepGraph   bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate EI against brace tilt",
	Long: `Recompute the slice EI while the brace tilt runs from 0° (perpendicular to
the span) up to --max-tilt. Braces with a directly entered breadth keep it;
all other braces follow the sweep.

Examples:
  goflex sweep
  goflex sweep --max-tilt 60 --step 5 --graph`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepOpts.register(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMaxTilt, "max-tilt", 80, "Largest tilt of the sweep (degrees)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 10, "Tilt increment (degrees)")
	sweepCmd.Flags().BoolVar(&sweepGraph, "graph", false, "Plot EI against tilt")
}

func runSweep(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !(sweepStep > 0) {
		return errors.New("step must be positive")
	}
	if !(sweepMaxTilt >= 0 && sweepMaxTilt <= config.MaxTilt) {
		return fmt.Errorf("max-tilt must be between 0 and %.1f degrees", config.MaxTilt)
	}
	if sweepMaxTilt/sweepStep >= maxSweepPoints {
		return fmt.Errorf("step too small: more than %d points between 0 and %.1f degrees", maxSweepPoints, sweepMaxTilt)
	}

	cfg, err := sweepOpts.load(cmd)
	if err != nil {
		return err
	}

	var points []diagram.SweepPoint
	for i := 0; ; i++ {
		tilt := float64(i) * sweepStep
		if tilt > sweepMaxTilt+1e-9 {
			break
		}

		for j := range cfg.Braces {
			b := &cfg.Braces[j]
			if b.Breadth != 0 {
				continue
			}
			t := tilt
			b.Tilt, b.Angle = &t, nil
		}

		_, res, err := computeSlice(cfg)
		if err != nil {
			return fmt.Errorf("tilt %.1f°: %w", tilt, err)
		}
		points = append(points, diagram.SweepPoint{Param: tilt, EI: res.EI})
	}
	logger.Debug("Sweep finished", zap.Int("points", len(points)))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     EI vs BRACE TILT")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tilt (°)\tEI (N·mm²)\tEI (N·m²)\n")
	fmt.Fprintf(w, "  ────────\t──────────\t─────────\n")
	for _, p := range points {
		fmt.Fprintf(w, "  %.1f\t%.4e\t%.3f\n", p.Param, p.EI, p.EI/1e6)
	}
	w.Flush()
	fmt.Fprintln(out)

	if sweepGraph {
		fmt.Fprintln(out, diagram.PlotSweep(points, "EI (N·m²) vs tilt (°)"))
		fmt.Fprintln(out)
	}

	return nil
}
