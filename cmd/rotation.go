package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goflex/internal/config"
	"github.com/alexiusacademia/goflex/internal/nscp"
	"github.com/alexiusacademia/goflex/internal/rotation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rotationOpts sliceFlags

	rotationEI     float64
	rotationMoment float64
	rotationLimit  float64
	rotationCombos string

	// Unfactored moments (N·m)
	rotationLoads = map[nscp.LoadType]*float64{
		nscp.Dead:       new(float64),
		nscp.Live:       new(float64),
		nscp.Roof:       new(float64),
		nscp.Wind:       new(float64),
		nscp.Earthquake: new(float64),
		nscp.Rain:       new(float64),
	}
)

var loadFlagNames = map[nscp.LoadType]string{
	nscp.Dead:       "dead",
	nscp.Live:       "live",
	nscp.Roof:       "roof",
	nscp.Wind:       "wind",
	nscp.Earthquake: "earthquake",
	nscp.Rain:       "rain",
}

var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Check the rotation θ = M / EI against a limit",
	Long: `Compute the rotation θ = M / EI of a slice in degrees and compare it with
a rotation limit.

EI is either given directly (--ei, N·mm²) or computed from the slice flags
and configuration file. The moment is either given directly (--moment, N·m)
or combined from unfactored moments by load type using NSCP 2015 load
combinations; the governing combination is used.

Examples:
  # Reference slice under 12 N·m with a 2° limit
  goflex rotation

  # Known rigidity
  goflex rotation --ei 2.5e8 --moment 20 --limit 1.5

  # Service moment D + L from unfactored loads
  goflex rotation --dead 5 --live 8 --combos service`,
	RunE: runRotation,
}

func init() {
	rootCmd.AddCommand(rotationCmd)

	rotationOpts.register(rotationCmd)

	rotationCmd.Flags().Float64Var(&rotationEI, "ei", 0, "Flexural rigidity EI (N·mm²); computed from the slice if omitted")
	rotationCmd.Flags().Float64Var(&rotationMoment, "moment", config.DefaultMoment, "Applied moment (N·m)")
	rotationCmd.Flags().Float64Var(&rotationLimit, "limit", config.DefaultRotLimit, "Rotation limit (degrees, 0 = none)")
	rotationCmd.Flags().StringVar(&rotationCombos, "combos", "service", "Load combinations for unfactored moments (service, strength)")

	for t := nscp.Dead; t <= nscp.Rain; t++ {
		rotationCmd.Flags().Float64Var(rotationLoads[t], loadFlagNames[t], 0,
			fmt.Sprintf("Unfactored moment due to %s load (N·m)", t))
	}
}

func runRotation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := rotationOpts.load(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("limit") {
		cfg.Rotation.Limit = rotationLimit
	}

	ei := rotationEI
	if !cmd.Flags().Changed("ei") {
		_, res, err := computeSlice(cfg)
		if err != nil {
			return err
		}
		ei = res.EI
	}

	moment, source, err := rotationMomentFor(cmd, cfg)
	if err != nil {
		return err
	}
	logger.Debug("Rotation input",
		zap.Float64("moment_nm", moment),
		zap.String("source", source),
		zap.Float64("ei_nmm2", ei))

	res, err := rotation.Check(moment, ei, cfg.Rotation.Limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     ROTATION CHECK")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moment (M):\t%.3f N·m\t(%s)\n", moment, source)
	fmt.Fprintf(w, "  Rigidity (EI):\t%.4e N·mm²\t\n", res.EI)
	fmt.Fprintf(w, "  Rotation (θ):\t%.4f°\t\n", res.RotationDeg)
	if res.HasLimit {
		fmt.Fprintf(w, "  Limit:\t%.3f°\t\n", res.LimitDeg)
	} else {
		fmt.Fprintf(w, "  Limit:\t%s\t\n", placeholder)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  %s\n", res.Message)
	fmt.Fprintln(out)

	return nil
}

// rotationMomentFor picks the moment: --moment, the governing load
// combination when unfactored loads are given, or the configuration.
func rotationMomentFor(cmd *cobra.Command, cfg *config.Config) (float64, string, error) {
	if cmd.Flags().Changed("moment") {
		return rotationMoment, "given", nil
	}

	moments := nscp.Moments{}
	for t, name := range loadFlagNames {
		if cmd.Flags().Changed(name) {
			moments[t] = *rotationLoads[t]
		}
	}
	if len(moments) == 0 {
		return cfg.Rotation.Moment, "configuration", nil
	}

	var combos []nscp.LoadCombination
	switch rotationCombos {
	case "service":
		combos = nscp.ServiceCombinations
	case "strength":
		combos = nscp.LoadCombinations
	default:
		return 0, "", fmt.Errorf("unknown combinations %q (service, strength)", rotationCombos)
	}

	moment, governing, ok := nscp.GoverningMoment(moments, combos)
	if !ok {
		return 0, "", errors.New("no load combination gives a positive moment")
	}
	return moment, fmt.Sprintf("combination %s: %s", governing.ID, governing.Description), nil
}
