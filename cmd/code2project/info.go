package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"code2project/inspector/repository"
)

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show file metadata and the detected project root",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	fileInfo, err := repository.Stat(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path:      %s\n", fileInfo.Path)
	fmt.Fprintf(out, "Name:      %s\n", fileInfo.Name)
	fmt.Fprintf(out, "Size:      %d bytes\n", fileInfo.Size)
	fmt.Fprintf(out, "Extension: %s\n", fileInfo.Extension)
	fmt.Fprintf(out, "Modified:  %s\n", fileInfo.Modified.Format("2006-01-02T15:04:05"))

	project, err := repository.New().DetectProject(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Project:   %s (%s) at %s\n", project.Name, project.Type, project.RootPath)
	return nil
}
