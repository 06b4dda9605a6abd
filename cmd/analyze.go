package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/scenario"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Scenario file
	analyzeFile string

	// Geometry
	analyzeCondition string
	analyzeSpan      float64
	analyzeSpan2     float64

	// Stiffness
	analyzeEI      float64
	analyzeSection string
	analyzeWidth   float64
	analyzeHeight  float64
	analyzeFc      float64

	// Loading
	analyzeLoad       float64
	analyzeLoads      nscp.LoadIntensities
	analyzeSimplified bool
	analyzeFactor     float64

	// Output
	analyzeQuantity string
	analyzeDiagram  bool
	analyzeOutput   string
	analyzeTable    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute shear, moment and deflection diagrams of a beam",
	Long: `Compute the shear force, bending moment and deflection diagrams of a
beam carrying a uniformly distributed load. Each diagram is sampled at
101 equally spaced points from the left support to the right end.

The flexural rigidity EI (N·mm²) is taken from, in order:
  --ei                 given directly
  --section FILE       polygon section (JSON/YAML), E·Ix
  --width/--height     rectangular section, Ec = 4700√f'c

The uniform load (kN/m) is --load, or the governing NSCP 2015 combination
of --dead/--live/--roof/--wind/--earthquake/--rain when --load is absent.

Alternatively, all inputs can be read from a scenario file (--file).

Examples:
  # Simply supported 5 m beam, 8 kN/m
  gobeam analyze --span 5 --load 8 --ei 2e13

  # Two-span beam with EI from a 300x500 section, ASCII diagrams
  gobeam analyze -c two-span-unequal --span 4 --span2 6 --load 10 \
    --width 300 --height 500 --fc 28 --diagram

  # Factored load and moment diagram exported to PNG
  gobeam analyze --span 6 --dead 12 --live 8 --ei 2e13 -q moment -o moment.png

  # From a scenario file with the full point table
  gobeam analyze --file beam.yaml --table`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Scenario file (JSON or YAML)")

	// Geometry flags
	analyzeCmd.Flags().StringVarP(&analyzeCondition, "condition", "c", beam.SimplySupported.String(), "Support condition ("+conditionTags()+")")
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "L", 0, "Primary span L1 (m)")
	analyzeCmd.Flags().Float64Var(&analyzeSpan2, "span2", 0, "Secondary span L2 (m), defaults to L1")

	// Stiffness flags
	analyzeCmd.Flags().Float64Var(&analyzeEI, "ei", 0, "Flexural rigidity EI (N·mm²)")
	analyzeCmd.Flags().StringVar(&analyzeSection, "section", "", "Section file (JSON or YAML) used to derive EI")
	analyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Rectangular section width (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Rectangular section depth (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeFc, "fc", 28, "Concrete compressive strength f'c (MPa)")

	// Load flags
	analyzeCmd.Flags().Float64VarP(&analyzeLoad, "load", "w", 0, "Uniform load w (kN/m)")
	addLoadFlags(analyzeCmd, &analyzeLoads)
	analyzeCmd.Flags().BoolVarP(&analyzeSimplified, "simplified", "s", false, "Use simplified combinations (gravity only)")
	analyzeCmd.Flags().Float64VarP(&analyzeFactor, "factor", "j", 0, "Factor applied to every diagram, must not be zero (default from config)")

	// Output flags
	analyzeCmd.Flags().StringVarP(&analyzeQuantity, "quantity", "q", "all", "Diagram to compute (shear, moment, deflection, all)")
	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Show ASCII diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
	analyzeCmd.Flags().BoolVarP(&analyzeTable, "table", "t", false, "Print every sampled point")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	quantities, err := selectedQuantities(analyzeQuantity)
	if err != nil {
		return err
	}

	s, eiSource, err := analyzeScenario(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("factor") {
		s.SetFactor(analyzeFactor)
	}
	s = s.WithDefaults(cfg.Factor)

	res, err := scenario.Run(newAnalysis(), s)
	if err != nil {
		return err
	}

	title := "BEAM ANALYSIS"
	if s.Name != "" {
		title = fmt.Sprintf("BEAM ANALYSIS - %s", s.Name)
	}
	printHeader(title)
	printReactions(res.Beam, res.Condition, res.Reactions)

	printHeading("STIFFNESS AND FACTOR:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  EI:\t%.4e N·mm² (%s)\n", s.EI, eiSource)
	fmt.Fprintf(w, "  EI:\t%.2f kN·m²\n", res.Beam.Material.EIkNm2())
	fmt.Fprintf(w, "  Factor (j):\t%g\n", s.EffectiveFactor())
	w.Flush()
	fmt.Println()

	series := make([]beam.Series, 0, len(quantities))
	for _, q := range quantities {
		d, ok := res.Diagram(q)
		if !ok {
			return fmt.Errorf("no %s diagram computed", q)
		}
		series = append(series, d)
	}

	printPeaks(series)

	if analyzeTable {
		printPointTable(series)
	}

	if analyzeDiagram {
		opts := diagram.ASCIIOptions{Height: cfg.Chart.ASCIIHeight, Width: cfg.Chart.ASCIIWidth}
		for _, d := range series {
			fmt.Print(diagram.DrawSeries(d, opts))
		}
		fmt.Println()
	}

	if analyzeOutput != "" {
		size := diagram.ImageSize{Width: cfg.Chart.WidthInches, Height: cfg.Chart.HeightInches}
		for _, d := range series {
			name := analyzeOutput
			if len(series) > 1 {
				name = diagram.QuantityFilename(analyzeOutput, d.Quantity)
			}
			path, err := diagram.ExportSeries(d, name, size)
			if err != nil {
				return fmt.Errorf("export %s: %w", d.Title, err)
			}
			logger.Info("exported diagram", "quantity", d.Quantity.String(), "file", path)
			fmt.Printf("  Diagram exported to: %s\n", path)
		}
		fmt.Println()
	}

	return nil
}

// selectedQuantities maps the --quantity flag to the diagrams to report
func selectedQuantities(s string) ([]beam.Quantity, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return beam.Quantities, nil
	}
	q, err := beam.ParseQuantity(s)
	if err != nil {
		return nil, err
	}
	return []beam.Quantity{q}, nil
}

// analyzeScenario builds the scenario from --file or from the geometry, stiffness and load flags.
// It also returns a description of where EI came from.
func analyzeScenario(cmd *cobra.Command) (scenario.Scenario, string, error) {
	if analyzeFile != "" {
		s, err := scenario.LoadFile(analyzeFile)
		if err != nil {
			return scenario.Scenario{}, "", err
		}
		return s, "scenario file", nil
	}

	if analyzeSpan <= 0 {
		return scenario.Scenario{}, "", errors.New("provide --span or a scenario --file")
	}

	ei, source, err := resolveEI(cmd)
	if err != nil {
		return scenario.Scenario{}, "", err
	}

	load, err := resolveLoad(cmd)
	if err != nil {
		return scenario.Scenario{}, "", err
	}

	return scenario.Scenario{
		Condition:     analyzeCondition,
		PrimarySpan:   analyzeSpan,
		SecondarySpan: analyzeSpan2,
		EI:            ei,
		Load:          load,
	}, source, nil
}

func resolveEI(cmd *cobra.Command) (float64, string, error) {
	switch {
	case cmd.Flags().Changed("ei"):
		return analyzeEI, "given", nil

	case analyzeSection != "":
		sec, err := section.LoadFromFile(analyzeSection)
		if err != nil {
			return 0, "", fmt.Errorf("load section: %w", err)
		}
		return sec.FlexuralRigidity(), fmt.Sprintf("section %s, E = %.0f MPa", sec.Name, sec.Modulus()), nil

	case analyzeWidth > 0 && analyzeHeight > 0:
		sec := section.Rectangle(fmt.Sprintf("%.0fx%.0f", analyzeWidth, analyzeHeight), analyzeWidth, analyzeHeight, analyzeFc)
		if err := sec.Validate(); err != nil {
			return 0, "", err
		}
		return sec.FlexuralRigidity(), fmt.Sprintf("%s mm rectangle, Ec = %.0f MPa", sec.Name, sec.Modulus()), nil
	}

	return 0, "", errors.New("provide --ei, --section, or --width and --height")
}

func resolveLoad(cmd *cobra.Command) (float64, error) {
	if cmd.Flags().Changed("load") {
		return analyzeLoad, nil
	}
	if analyzeLoads.IsZero() {
		return 0, fmt.Errorf("%w; use --load or --dead/--live/...", errNoLoad)
	}

	wu, combo := nscp.CalculateGoverningLoad(analyzeLoads, combinationsFor(analyzeSimplified))
	if combo.ID == "" {
		return 0, errors.New("no load combination produces a positive factored load")
	}
	logger.Info("using governing load combination", "combination", combo.Description, "wu", wu)
	return wu, nil
}

// printPeaks prints the extreme values of each diagram
func printPeaks(series []beam.Series) {
	printHeading("PEAK VALUES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diagram\tMax\tat x (m)\tMin\tat x (m)\n")
	fmt.Fprintf(w, "  ───────\t───\t────────\t───\t────────\n")
	for _, s := range series {
		hi, lo := s.Max(), s.Min()
		fmt.Fprintf(w, "  %s (%s)\t%.3f\t%.2f\t%.3f\t%.2f\n", s.Quantity, s.Quantity.Unit(), hi.Y, hi.X, lo.Y, lo.X)
	}
	w.Flush()
	fmt.Println()
}

// printPointTable prints every sampled point, one column per diagram.
// All series of one analysis share the same x positions.
func printPointTable(series []beam.Series) {
	if len(series) == 0 {
		return
	}

	printHeading("SAMPLED POINTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  x (m)\t")
	for _, s := range series {
		fmt.Fprintf(w, "%s\t", s.Quantity.Label())
	}
	fmt.Fprintln(w)

	for i, p := range series[0].Points {
		fmt.Fprintf(w, "  %.3f\t", p.X)
		for _, s := range series {
			fmt.Fprintf(w, "%.4f\t", s.Points[i].Y)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}
