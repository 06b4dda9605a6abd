package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section properties and flexural rigidity",
	Long: `Calculate the properties of concrete cross-sections defined in
JSON or YAML files, or of a plain rectangle.

This allows the flexural rigidity EI of shapes like T-beams, L-beams
or any simple polygon to be used in 'gobeam analyze --section'.

Subcommands:
  properties  - Area, centroid, second moment of area and EI

Example JSON file structure:
{
  "name": "T-Beam Section",
  "fc": 28,
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": -300, "y": 500},
    {"x": -300, "y": 400},
    {"x": 0, "y": 400}
  ]
}

Set "e" (MPa) to override Ec = 4700√f'c.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
