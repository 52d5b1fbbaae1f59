package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"code2project/optimizer"
)

var (
	optimizeMinify        bool
	optimizeStripComments bool
	optimizeIndent        int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Strip comments, minify or reformat a source file",
	Long: `Apply shallow text transformations to a source file and print the result.
By default the file is reformatted with bracket-depth indentation.

Examples:
  code2project optimize src/App.jsx
  code2project optimize --minify src/App.jsx
  code2project optimize --strip-comments --indent=4 src/utils/http.js`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().BoolVar(&optimizeMinify, "minify", false, "Minify instead of reformat")
	optimizeCmd.Flags().BoolVar(&optimizeStripComments, "strip-comments", false, "Remove comments first")
	optimizeCmd.Flags().IntVar(&optimizeIndent, "indent", 0, "Indentation width (default from config)")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("file not found: %s", args[0])
	}
	src := string(data)

	if optimizeStripComments {
		src = optimizer.RemoveComments(src)
	}
	if optimizeMinify {
		fmt.Fprintln(cmd.OutOrStdout(), optimizer.Minify(src))
		return nil
	}

	indent := optimizeIndent
	if indent <= 0 {
		indent = cfg.IndentWidth
	}
	fmt.Fprintln(cmd.OutOrStdout(), optimizer.Format(src, indent))
	return nil
}
