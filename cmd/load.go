package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored uniform loads (kN/m)
	loadIntensities nscp.LoadIntensities

	// Options
	showAll       bool
	useSimplified bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate factored uniform load using NSCP load combinations",
	Long: `Calculate the factored uniform load (wu) based on NSCP 2015 load combinations.

Provide unfactored uniform loads from different load types and this command
will compute the factored load for all applicable NSCP load combinations.
The governing value can be passed to 'gobeam analyze --load'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gobeam load --dead 12 --live 8

  # With wind load
  gobeam load --dead 12 --live 8 --wind 4

  # Show all combinations
  gobeam load --dead 12 --live 8 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	addLoadFlags(loadCmd, &loadIntensities)

	// Options
	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

// addLoadFlags registers the unfactored load flags on cmd
func addLoadFlags(cmd *cobra.Command, loads *nscp.LoadIntensities) {
	cmd.Flags().Float64VarP(&loads.Dead, "dead", "d", 0, "Uniform dead load (kN/m)")
	cmd.Flags().Float64VarP(&loads.Live, "live", "l", 0, "Uniform live load (kN/m)")
	cmd.Flags().Float64VarP(&loads.Roof, "roof", "r", 0, "Uniform roof live load (kN/m)")
	cmd.Flags().Float64Var(&loads.Wind, "wind", 0, "Uniform wind load (kN/m)")
	cmd.Flags().Float64VarP(&loads.Earthquake, "earthquake", "e", 0, "Uniform earthquake load (kN/m)")
	cmd.Flags().Float64VarP(&loads.Rain, "rain", "R", 0, "Uniform rain load (kN/m)")
}

func combinationsFor(simplified bool) []nscp.LoadCombination {
	if simplified {
		return nscp.SimplifiedCombinations
	}
	return nscp.LoadCombinations
}

var errNoLoad = errors.New("please provide at least one unfactored load")

func runLoad(cmd *cobra.Command, args []string) error {
	loads := loadIntensities

	// Check if any load is provided
	if loads.IsZero() {
		return fmt.Errorf("%w; use 'gobeam load --help' for usage information", errNoLoad)
	}

	combinations := combinationsFor(useSimplified)

	printHeader("NSCP 2015 FACTORED UNIFORM LOAD CALCULATION")

	// Print input loads
	printHeading("UNFACTORED LOADS (kN/m):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loads.Live)
	}
	if loads.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", loads.Roof)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", loads.Earthquake)
	}
	if loads.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", loads.Rain)
	}
	w.Flush()
	fmt.Println()

	// Calculate governing load
	maxWu, governingCombo := nscp.CalculateGoverningLoad(loads, combinations)

	if showAll {
		printHeading("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			wu := combo.CalculateFactoredLoad(loads)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, wu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	printHeading("RESULT:")
	if governingCombo.ID == "" {
		fmt.Println("  No combination produces a positive factored load.")
		fmt.Println()
		return nil
	}
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD (wu) = %.2f kN/m  \n", maxWu)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
