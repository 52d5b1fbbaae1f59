package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"code2project/generator"
)

var (
	scaffoldBaseDir string
	scaffoldDeps    []string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <name>",
	Short: "Generate a new front-end project skeleton",
	Long: `Create the project directory tree and emit the fixed configuration files
(package.json, tsconfig.json, vite.config.ts, .gitignore, .eslintrc.json).

Examples:
  code2project scaffold my-app
  code2project scaffold --deps react,react-dom,axios my-app
  code2project scaffold --base /tmp/projects my-app`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldBaseDir, "base", "", "Base directory for the project (default from config)")
	scaffoldCmd.Flags().StringSliceVar(&scaffoldDeps, "deps", nil, "Dependencies to pin in the manifest")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	projectName := args[0]

	baseDir := scaffoldBaseDir
	if baseDir == "" {
		baseDir = cfg.BaseDir
	}

	ctx := context.Background()
	gen := generator.NewGenerator(baseDir)

	created, err := gen.CreateStructure(ctx, projectName)
	if err != nil {
		return err
	}
	if err := gen.WriteConfigFiles(ctx, projectName); err != nil {
		return err
	}
	if err := gen.WriteManifest(ctx, projectName, scaffoldDeps); err != nil {
		return err
	}

	dirs := make([]string, 0, len(created))
	for dir := range created {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created[dir])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "project %s ready\n", projectName)
	return nil
}
