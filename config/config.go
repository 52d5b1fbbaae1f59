// Package config loads tool configuration from an optional .code2project.yaml
// file with CODE2PROJECT_* environment overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tool-wide settings shared by the CLI commands
type Config struct {
	// IndentWidth is the indentation width used by the reformatter
	IndentWidth int `mapstructure:"indentWidth" yaml:"indentWidth"`
	// SkipTests excludes *.test.* files from directory analysis
	SkipTests bool `mapstructure:"skipTests" yaml:"skipTests"`
	// Format is the default report format (markdown, json or yaml)
	Format string `mapstructure:"format" yaml:"format"`
	// BaseDir is where scaffolded projects are created
	BaseDir string `mapstructure:"baseDir" yaml:"baseDir"`
}

// Default returns the configuration used when no file or env override is present
func Default() *Config {
	return &Config{
		IndentWidth: 2,
		SkipTests:   false,
		Format:      "markdown",
		BaseDir:     ".",
	}
}

// Load reads .code2project.yaml from dir (and the working directory when dir
// is empty), applies environment overrides and returns the effective
// configuration. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".code2project")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("CODE2PROJECT")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("indentWidth", defaults.IndentWidth)
	v.SetDefault("skipTests", defaults.SkipTests)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("baseDir", defaults.BaseDir)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
