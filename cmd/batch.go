package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/scenario"
	"github.com/spf13/cobra"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze many beams listed in an Excel workbook",
	Long: `Analyze every beam listed in the first sheet of an Excel workbook
and print the peak shear, moment and deflection of each.

The first row is a header and is skipped. Columns, in order:
  name, condition, primary_span, secondary_span, ei, load, factor

secondary_span and factor may be left blank. Rows that cannot be read
or fail validation are reported and skipped; the other rows still run.

Examples:
  gobeam batch --file beams.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to the .xlsx workbook [required]")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(batchFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scenarios, rowErrs, err := scenario.ReadWorkbook(f, cfg.Factor)
	if err != nil {
		return err
	}
	logger.Info("read workbook", "file", batchFile, "scenarios", len(scenarios), "skipped", len(rowErrs))

	analysis := newAnalysis()
	results := make([]*scenario.Result, 0, len(scenarios))
	var failed []error
	for _, s := range scenarios {
		res, err := scenario.Run(analysis, s)
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", s.Name, err))
			continue
		}
		results = append(results, res)
		logger.Debug("analyzed scenario", "name", s.Name, "condition", res.Condition.String())
	}

	printHeader(fmt.Sprintf("BATCH ANALYSIS - %s", batchFile))

	if len(results) > 0 {
		printHeading("RESULTS:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tCondition\tSpan (m)\tw (kN/m)\tmax|V| (kN)\tmax|M| (kN-m)\tmax|δ| (mm)\n")
		fmt.Fprintf(w, "  ────\t─────────\t────────\t────────\t───────────\t─────────────\t───────────\n")
		for _, res := range results {
			span, _ := res.Condition.Span(res.Beam)
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\n",
				res.Scenario.Name,
				res.Condition,
				span,
				res.Scenario.Load,
				math.Abs(res.Peak(beam.ShearForce).Y),
				math.Abs(res.Peak(beam.BendingMoment).Y),
				math.Abs(res.Peak(beam.Deflection).Y),
			)
		}
		w.Flush()
		fmt.Println()
	}

	if len(rowErrs) > 0 || len(failed) > 0 {
		printHeading("SKIPPED:")
		for _, e := range rowErrs {
			fmt.Printf("  ⚠ %v\n", e)
		}
		for _, e := range failed {
			fmt.Printf("  ⚠ %v\n", e)
		}
		fmt.Println()
	}

	fmt.Printf("  %d analyzed, %d skipped\n", len(results), len(rowErrs)+len(failed))
	fmt.Println()
	return nil
}
