package main

import (
	"os"

	"github.com/spf13/cobra"

	"code2project/config"
)

var formatFlag string

var rootCmd = &cobra.Command{
	Use:   "code2project",
	Short: "Code2Project - front-end source analysis and project scaffolding",
	Long: `Code2Project performs lightweight, pattern-based analysis of front-end
source files (dependency extraction, component detection, complexity scoring,
syntax sanity checks) and generates boilerplate project scaffolding.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.SetVersionTemplate("code2project version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"Output format: markdown, json or yaml (default from config)")
}

// loadConfig reads the effective tool configuration, falling back to
// defaults when loading fails
func loadConfig() *config.Config {
	cfg, err := config.Load("")
	if err != nil {
		return config.Default()
	}
	return cfg
}

// resolveFormat determines the report format.
// Precedence: --format flag > CODE2PROJECT_FORMAT env var > config file
func resolveFormat(cfg *config.Config) string {
	if formatFlag != "" {
		return formatFlag
	}
	if env := os.Getenv("CODE2PROJECT_FORMAT"); env != "" {
		return env
	}
	if cfg != nil && cfg.Format != "" {
		return cfg.Format
	}
	return "markdown"
}
