// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/gateway"
	"github.com/galaxy-dev/galaxy-profile/internal/usecase"
)

// generateTimeout bounds the whole fetch-and-render run. The REST fallback
// enumerates every repository, so this is generous.
const generateTimeout = 3 * time.Minute

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Renders the four profile SVG images",
	Long: `Loads the YAML config, fetches contribution stats and language
data from the GitHub API (or uses built-in demo data with --demo), and
writes the four SVG images to the output directory.

A GITHUB_TOKEN environment variable enables the GraphQL API and raises
rate limits; without one the tool falls back to unauthenticated REST
calls and leaves the commit count blank.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           log.InfoLevel,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		demo, _ := cmd.Flags().GetBool("demo")
		configPath, _ := cmd.Flags().GetString("config")
		outDir, _ := cmd.Flags().GetString("out")

		// A .env file is optional; environment variables win either way.
		if err := godotenv.Load(); err == nil {
			logger.Debug("loaded .env file")
		}

		if demo && configPath == config.DefaultConfigFile {
			configPath = config.ExampleConfigFile
		}

		if err := runGenerate(logger, configPath, outDir, demo); err != nil {
			var cfgErr *config.ConfigError
			if errors.As(err, &cfgErr) {
				fmt.Fprintf(os.Stderr, "Config error: %v\n", cfgErr)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to generate images: %v\n", err)
			}
			os.Exit(1)
		}
		logger.Info("generation complete", "dir", outDir)
	},
}

// runGenerate loads the config, builds the right fetcher, and runs the
// pipeline. Shared between the generate and init commands.
func runGenerate(logger *log.Logger, configPath, outDir string, demo bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var fetcher gateway.Fetcher
	if demo {
		logger.Info("using demo data, no API calls will be made")
		fetcher = gateway.NewDemoGateway()
	} else {
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			logger.Warn("GITHUB_TOKEN is not set, using unauthenticated REST API")
		}
		fetcher, err = gateway.NewGitHubGateway(cfg.Username, token, logger)
		if err != nil {
			return fmt.Errorf("create GitHub gateway: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	return usecase.NewPipeline(cfg, fetcher, logger, outDir).Run(ctx)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("demo", false, "Render with built-in demo data instead of calling the GitHub API")
	generateCmd.Flags().StringP("config", "c", config.DefaultConfigFile, "Path to the YAML config file")
	generateCmd.Flags().StringP("out", "o", "assets/generated", "Directory to write the SVG images into")
}
