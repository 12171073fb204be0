// Package cmd provides the command-line interface for the cohort projection
// tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cohort",
	Short: "Cohort CLI tool runs cohort-component population projections.",
	Long: `Cohort CLI tool runs cohort-component population projections. ` +
		`Currently, it provides a built-in demonstration scenario (demo) ` +
		`that records its step trace for later analysis.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
