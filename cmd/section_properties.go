package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile   string
	sectionWidth  float64
	sectionHeight float64
	sectionFc     float64
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Calculate section properties and flexural rigidity EI",
	Long: `Calculate the gross area, centroid, second moment of area about the
horizontal centroidal axis and the flexural rigidity EI of a section.

Examples:
  gobeam section properties --file t-beam.json
  gobeam section properties --width 300 --height 500 --fc 28`,
	RunE: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section file (JSON or YAML)")
	sectionPropertiesCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Rectangular section width (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Rectangular section depth (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionFc, "fc", 28, "Concrete compressive strength f'c (MPa)")
}

func runSectionProperties(cmd *cobra.Command, args []string) error {
	var sec *section.Section
	switch {
	case sectionFile != "":
		s, err := section.LoadFromFile(sectionFile)
		if err != nil {
			return fmt.Errorf("load section: %w", err)
		}
		sec = s
	case sectionWidth > 0 && sectionHeight > 0:
		sec = section.Rectangle(fmt.Sprintf("%.0f x %.0f mm rectangle", sectionWidth, sectionHeight), sectionWidth, sectionHeight, sectionFc)
		if err := sec.Validate(); err != nil {
			return err
		}
	default:
		return errors.New("provide --file, or --width and --height")
	}

	props := sec.CalculateProperties()
	ei := sec.FlexuralRigidity()

	printHeader("SECTION PROPERTIES")

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	printHeading("MATERIAL PROPERTIES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if sec.Fc > 0 {
		fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", sec.Fc)
	}
	if sec.E > 0 {
		fmt.Fprintf(w, "  E (given):\t%.0f MPa\n", sec.E)
	} else {
		fmt.Fprintf(w, "  Ec = 4700√f'c:\t%.0f MPa\n", sec.Modulus())
		fmt.Fprintf(w, "  Modular ratio (n = Es/Ec):\t%.2f\n", nscp.ModularRatio(sec.Fc))
	}
	w.Flush()
	fmt.Println()

	printHeading("GEOMETRY:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vertices:\t%d\n", len(sec.Vertices))
	fmt.Fprintf(w, "  Width (max):\t%.1f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.1f mm\n", props.Height)
	fmt.Fprintf(w, "  Area:\t%.1f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Ix (centroidal):\t%.4e mm⁴\n", props.Ix)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FLEXURAL RIGIDITY", []string{
		fmt.Sprintf("EI = %.4e N·mm²", ei),
		fmt.Sprintf("EI = %.2f kN·m²", beam.NewMaterial(ei).EIkNm2()),
	}))
	fmt.Println()
	return nil
}
