package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goflex/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored moments (N·m)
	momentLoads = map[nscp.LoadType]*float64{
		nscp.Dead:       new(float64),
		nscp.Live:       new(float64),
		nscp.Roof:       new(float64),
		nscp.Wind:       new(float64),
		nscp.Earthquake: new(float64),
		nscp.Rain:       new(float64),
	}

	// Options
	momentShowAll bool
	momentCombos  string
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Combine unfactored moments using NSCP load combinations",
	Long: `Combine unfactored moments by load type with the NSCP 2015 load
combinations and report the governing moment. The result can be passed
to 'goflex rotation --moment'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Service moment (D, D + L)
  goflex moment --dead 5 --live 8

  # Factored combinations, all shown
  goflex moment --dead 5 --live 8 --wind 3 --combos strength --all`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	for t := nscp.Dead; t <= nscp.Rain; t++ {
		momentCmd.Flags().Float64Var(momentLoads[t], loadFlagNames[t], 0,
			fmt.Sprintf("Unfactored moment due to %s load (N·m)", t))
	}

	momentCmd.Flags().BoolVarP(&momentShowAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().StringVar(&momentCombos, "combos", "service", "Load combinations (service, strength)")
}

func runMoment(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	moments := nscp.Moments{}
	for t := nscp.Dead; t <= nscp.Rain; t++ {
		if v := *momentLoads[t]; v != 0 {
			moments[t] = v
		}
	}
	if len(moments) == 0 {
		return errors.New("provide at least one unfactored moment")
	}

	var combinations []nscp.LoadCombination
	switch momentCombos {
	case "service":
		combinations = nscp.ServiceCombinations
	case "strength":
		combinations = nscp.LoadCombinations
	default:
		return fmt.Errorf("unknown combinations %q (service, strength)", momentCombos)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NSCP 2015 COMBINED MOMENT")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED MOMENTS (N·m):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for t := nscp.Dead; t <= nscp.Rain; t++ {
		if v, ok := moments[t]; ok {
			fmt.Fprintf(w, "  %s (%s):\t%.2f\n", loadFlagNames[t], t, v)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	moment, governing, ok := nscp.GoverningMoment(moments, combinations)

	if momentShowAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tM (N·m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\n")
		for _, combo := range combinations {
			marker := ""
			if ok && combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Moment(moments), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if !ok {
		return errors.New("no load combination gives a positive moment")
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  ╔═══════════════════════════════════╗")
	fmt.Fprintf(out, "  ║  MOMENT (M) = %.2f N·m\n", moment)
	fmt.Fprintln(out, "  ╚═══════════════════════════════════╝")
	fmt.Fprintln(out)
	return nil
}
