// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively creates a config.yml",
	Long: `Walks through an interactive setup: GitHub username, profile
details, the three galaxy arms with their technologies, and optional
advanced settings. The answers are written to config.yml and can be
regenerated or edited at any time.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           log.InfoLevel,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		configPath, _ := cmd.Flags().GetString("config")

		generateNow, err := wizard.New().Run(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}
		if !generateNow {
			return
		}

		if err := godotenv.Load(); err == nil {
			logger.Debug("loaded .env file")
		}
		if err := runGenerate(logger, configPath, "assets/generated", false); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate images: %v\n", err)
			os.Exit(1)
		}
		logger.Info("generation complete", "dir", "assets/generated")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("config", "c", config.DefaultConfigFile, "Path to write the YAML config file")
}
