package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/spf13/cobra"
)

var (
	reactionsCondition string
	reactionsSpan      float64
	reactionsSpan2     float64
	reactionsLoad      float64
)

var reactionsCmd = &cobra.Command{
	Use:   "reactions",
	Short: "Calculate support reactions under a uniform load",
	Long: `Calculate the support reactions of a beam carrying a uniform load.

For a two-span continuous beam the interior support moment M1 is found
with the three-moment equation:

  M1 = -(w·L1³ + w·L2³) / (8·(L1 + L2))
  R1 = M1/L1 + w·L1/2
  R3 = M1/L2 + w·L2/2
  R2 = w·(L1 + L2) - R1 - R3

Examples:
  # Two-span beam, 4 m and 6 m spans, 10 kN/m
  gobeam reactions --condition two-span-unequal --span 4 --span2 6 --load 10

  # Simply supported beam
  gobeam reactions --span 5 --load 8`,
	RunE: runReactions,
}

func init() {
	rootCmd.AddCommand(reactionsCmd)

	reactionsCmd.Flags().StringVarP(&reactionsCondition, "condition", "c", beam.SimplySupported.String(), "Support condition ("+conditionTags()+")")
	reactionsCmd.Flags().Float64VarP(&reactionsSpan, "span", "L", 0, "Primary span L1 (m) [required]")
	reactionsCmd.Flags().Float64Var(&reactionsSpan2, "span2", 0, "Secondary span L2 (m), defaults to L1")
	reactionsCmd.Flags().Float64VarP(&reactionsLoad, "load", "w", 0, "Uniform load w (kN/m) [required]")

	reactionsCmd.MarkFlagRequired("span")
	reactionsCmd.MarkFlagRequired("load")
}

func runReactions(cmd *cobra.Command, args []string) error {
	c, err := beam.ParseCondition(reactionsCondition)
	if err != nil {
		return err
	}
	if reactionsSpan <= 0 {
		return fmt.Errorf("span must be positive, got %g", reactionsSpan)
	}

	b := beam.NewBeam(reactionsSpan, reactionsSpan2, beam.Material{})

	var r beam.Reactions
	var total float64
	switch c {
	case beam.SimplySupported:
		r = beam.SimplySupportedReactions(reactionsLoad, b.PrimarySpan)
		total = reactionsLoad * b.PrimarySpan
	case beam.TwoSpanUnequal:
		r = b.SolveReactions(reactionsLoad)
		total = reactionsLoad * b.TotalSpan()
		logger.Debug("solved two-span reactions", "load", r.Load, "m1", r.M1)
	}

	printHeader(fmt.Sprintf("SUPPORT REACTIONS - %s", c))
	printReactions(b, c, r)

	// Equilibrium check
	printHeading("EQUILIBRIUM CHECK:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total load (w·L):\t%.4f kN\n", total)
	fmt.Fprintf(w, "  Sum of reactions:\t%.4f kN", r.Total())
	if math.Abs(total-r.Total()) <= 1e-9*math.Max(1, math.Abs(total)) {
		fmt.Fprintf(w, " ✓")
	} else {
		fmt.Fprintf(w, " ⚠")
	}
	fmt.Fprintln(w)
	w.Flush()
	fmt.Println()
	return nil
}

// printReactions prints the geometry and support reactions of b
func printReactions(b *beam.Beam, c beam.Condition, r beam.Reactions) {
	printHeading("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Condition:\t%s\n", c)
	fmt.Fprintf(w, "  Primary Span (L1):\t%.3f m\n", b.PrimarySpan)
	if c == beam.TwoSpanUnequal {
		fmt.Fprintf(w, "  Secondary Span (L2):\t%.3f m\n", b.SecondarySpan)
	}
	fmt.Fprintf(w, "  Uniform Load (w):\t%.3f kN/m\n", r.Load)
	w.Flush()
	fmt.Println()

	printHeading("REACTIONS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch c {
	case beam.SimplySupported:
		fmt.Fprintf(w, "  Left support (R1):\t%.4f kN\n", r.R1)
		fmt.Fprintf(w, "  Right support (R2):\t%.4f kN\n", r.R2)
	case beam.TwoSpanUnequal:
		fmt.Fprintf(w, "  Interior moment (M1):\t%.4f kN-m\n", r.M1)
		fmt.Fprintf(w, "  Left support (R1):\t%.4f kN\n", r.R1)
		fmt.Fprintf(w, "  Interior support (R2):\t%.4f kN\n", r.R2)
		fmt.Fprintf(w, "  Right support (R3):\t%.4f kN\n", r.R3)
	}
	w.Flush()
	fmt.Println()
}
