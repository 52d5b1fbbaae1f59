package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"code2project/analyzer"
	"code2project/inspector/graph"
	"code2project/inspector/repository"
)

var analyzeSkipTests bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze front-end source files and render a report",
	Long: `Analyze a source file or directory: extract dependencies and components,
classify lines, score complexity and run the syntax sanity checks.

Examples:
  code2project analyze src/
  code2project analyze --format=json src/App.jsx
  code2project analyze --skip-tests --format=yaml .`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSkipTests, "skip-tests", false, "Skip *.test.* files")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	a := analyzer.NewAnalyzer(&graph.Config{
		SkipTests: analyzeSkipTests || cfg.SkipTests,
		Recursive: true,
	})

	var project *analyzer.ProjectAnalysis
	if info.IsDir() {
		project, err = a.AnalyzePackage(path)
		if err != nil {
			return err
		}
	} else {
		analysis, err := a.AnalyzeFile(path)
		if err != nil {
			return err
		}
		project = analyzer.ProjectFromFiles(analysis.File.Name, analysis)
	}

	// Label the report with the detected project name when one is found
	if detected, err := repository.New().DetectProject(path); err == nil && detected.Name != "" {
		project.Name = detected.Name
	}

	output, err := analyzer.RenderReport(project, resolveFormat(cfg))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
