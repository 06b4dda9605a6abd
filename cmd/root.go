package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	// Set by the root PersistentPreRunE before any command runs
	cfg    = config.Default()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam Shear, Moment and Deflection Diagram Tool",
	Long: `gobeam - Go Beam Diagram Generator

A CLI tool that computes shear force, bending moment and deflection
diagrams of beams carrying a uniformly distributed load.

Supported support conditions:
  - simply-supported   single span with pinned ends
  - two-span-unequal   two-span continuous beam, spans may differ

Each diagram is sampled at 101 points along the beam and can be
printed as a table, drawn in the terminal or exported as an image.

Units: spans in m, loads in kN/m, EI in N·mm², shear in kN,
moment in kN-m and deflection in mm.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			loaded.Log.Format = logFormat
		}

		l, err := loaded.Log.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = l
		slog.SetDefault(l)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Shear, Moment and Deflection Diagrams           ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shear force, bending moment and deflection")
		fmt.Println("  diagrams of beams under a uniformly distributed load.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported and two-span continuous beams")
		fmt.Println("    • Support reactions by the three-moment equation")
		fmt.Println("    • Factored uniform load using NSCP load combinations")
		fmt.Println("    • EI from a rectangular or polygonal concrete section")
		fmt.Println("    • Terminal charts and PNG/SVG/PDF export")
		fmt.Println("    • Batch analysis from an Excel workbook")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}

// newAnalysis returns an analysis that logs through the configured logger
func newAnalysis() *beam.Analysis {
	return beam.NewAnalysis(logger)
}

// conditionTags lists the accepted --condition values
func conditionTags() string {
	tags := make([]string, len(beam.Conditions))
	for i, c := range beam.Conditions {
		tags[i] = c.String()
	}
	return strings.Join(tags, ", ")
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printHeading(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}
