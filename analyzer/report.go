package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report output formats
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// RenderReport renders a project analysis in the requested format
func RenderReport(project *ProjectAnalysis, format string) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return []byte(MarkdownReport(project)), nil
	case FormatJSON:
		return json.MarshalIndent(project, "", "  ")
	case FormatYAML:
		return yaml.Marshal(project)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// MarkdownReport renders a project analysis into the fixed markdown layout.
// It always succeeds given a well-formed analysis.
func MarkdownReport(project *ProjectAnalysis) string {
	deps := project.Dependencies
	if deps == nil {
		deps = []string{}
	}
	depsJSON, _ := json.MarshalIndent(deps, "", "  ")

	builder := &strings.Builder{}
	fmt.Fprintf(builder, "# Code Analysis Report\n")
	fmt.Fprintf(builder, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(builder, "## Summary\n")
	fmt.Fprintf(builder, "- **Total Files**: %d\n", project.FileCount)
	fmt.Fprintf(builder, "- **Total Lines**: %d\n", project.TotalLines)
	fmt.Fprintf(builder, "- **Components Found**: %d\n", len(project.Components))
	fmt.Fprintf(builder, "- **Dependencies**: %d\n\n", len(project.Dependencies))
	fmt.Fprintf(builder, "## Complexity Metrics\n")
	fmt.Fprintf(builder, "- **Average Complexity**: %.2f\n", project.AverageComplexity)
	fmt.Fprintf(builder, "- **Code Lines**: %d\n", project.CodeLines)
	fmt.Fprintf(builder, "- **Comment Lines**: %d\n\n", project.CommentLines)
	fmt.Fprintf(builder, "## Dependencies\n")
	fmt.Fprintf(builder, "```json\n%s\n```\n\n", depsJSON)
	fmt.Fprintf(builder, "## Components\n")
	for _, component := range project.Components {
		fmt.Fprintf(builder, "- **%s** (%s)\n", component.Name, component.Kind)
	}
	return builder.String()
}
