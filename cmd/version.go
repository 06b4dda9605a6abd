package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Println("Beam Shear, Moment and Deflection Diagram Tool")
		fmt.Printf("Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
