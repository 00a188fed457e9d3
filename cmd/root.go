// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "galaxy-profile",
	Short: "Generates an animated galaxy-themed GitHub profile README",
	Long: `galaxy-profile renders a set of animated SVG images for a GitHub
profile README: a spiral-galaxy header, a contribution stats card, a
language tech-stack card, and a featured-projects constellation.

Images are generated from a config.yml in the working directory,
optionally enriched with live stats fetched from the GitHub API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
