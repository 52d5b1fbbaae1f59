// Package analyzer derives metrics, import groups, syntax checks and reports
// from inspected source files. Everything here is a total function over its
// input: malformed or empty source produces degraded but defined output.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"code2project/inspector"
	"code2project/inspector/graph"
	"code2project/inspector/jsx"
)

// FileAnalysis couples an inspected file with everything derived from its text
type FileAnalysis struct {
	File    *graph.File        `json:"file" yaml:"file"`
	Metrics graph.Metrics      `json:"metrics" yaml:"metrics"`
	Imports graph.ImportGroups `json:"imports" yaml:"imports"`
	Syntax  graph.SyntaxResult `json:"syntax" yaml:"syntax"`
}

// ProjectAnalysis aggregates per-file analyses for a directory of sources
type ProjectAnalysis struct {
	Name              string             `json:"name" yaml:"name"`
	FileCount         int                `json:"fileCount" yaml:"fileCount"`
	TotalLines        int                `json:"totalLines" yaml:"totalLines"`
	CodeLines         int                `json:"codeLines" yaml:"codeLines"`
	CommentLines      int                `json:"commentLines" yaml:"commentLines"`
	AverageComplexity float64            `json:"averageComplexity" yaml:"averageComplexity"`
	Dependencies      []string           `json:"dependencies" yaml:"dependencies"`
	Components        []*graph.Component `json:"components" yaml:"components"`
	Imports           graph.ImportGroups `json:"imports" yaml:"imports"`
	Files             []*FileAnalysis    `json:"files,omitempty" yaml:"files,omitempty"`
}

// Analyzer runs the analysis pipeline over sources, files and directories
type Analyzer struct {
	config  *graph.Config
	factory *inspector.Factory
}

// NewAnalyzer creates a new Analyzer with the provided configuration
func NewAnalyzer(config *graph.Config) *Analyzer {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Analyzer{
		config:  config,
		factory: inspector.NewFactory(config),
	}
}

// AnalyzeSource analyzes raw source text under a synthetic file name
func (a *Analyzer) AnalyzeSource(src []byte) *FileAnalysis {
	file, _ := jsx.NewInspector(a.config).InspectSource(src)
	return a.derive(file, string(src))
}

// AnalyzeFile analyzes a single source file
func (a *Analyzer) AnalyzeFile(path string) (*FileAnalysis, error) {
	insp, err := a.factory.GetInspector(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	file, err := insp.InspectSource(src)
	if err != nil {
		return nil, err
	}
	file.Name = filepath.Base(path)
	file.Path = path
	return a.derive(file, string(src)), nil
}

// AnalyzePackage walks a directory, analyzes every supported source file and
// aggregates the results into a project-level analysis
func (a *Analyzer) AnalyzePackage(packagePath string) (*ProjectAnalysis, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	project := &ProjectAnalysis{Name: filepath.Base(absPath)}

	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != absPath && !a.config.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !jsx.SupportedExt(filepath.Ext(path)) {
			return nil
		}
		if a.config.SkipTests && strings.Contains(filepath.Base(path), ".test.") {
			return nil
		}

		analysis, err := a.AnalyzeFile(path)
		if err != nil {
			return fmt.Errorf("error analyzing %s: %w", path, err)
		}
		project.Files = append(project.Files, analysis)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking package directory: %w", err)
	}

	if len(project.Files) == 0 {
		return nil, fmt.Errorf("no source files found in package: %s", packagePath)
	}

	project.aggregate()
	return project, nil
}

// ProjectFromFiles builds a project-level analysis from individual file analyses
func ProjectFromFiles(name string, files ...*FileAnalysis) *ProjectAnalysis {
	project := &ProjectAnalysis{Name: name, Files: files}
	project.aggregate()
	return project
}

func (a *Analyzer) derive(file *graph.File, src string) *FileAnalysis {
	return &FileAnalysis{
		File:    file,
		Metrics: CalculateMetrics(src),
		Imports: OptimizeImports(file.Dependencies),
		Syntax:  CheckSyntax(src),
	}
}

// aggregate fills the project-level totals from the per-file analyses
func (p *ProjectAnalysis) aggregate() {
	seen := make(map[string]bool)
	var complexitySum int
	for _, analysis := range p.Files {
		p.TotalLines += analysis.Metrics.TotalLines
		p.CodeLines += analysis.Metrics.CodeLines
		p.CommentLines += analysis.Metrics.CommentLines
		complexitySum += analysis.Metrics.ComplexityScore
		p.Components = append(p.Components, analysis.File.Components...)
		for _, dep := range analysis.File.Dependencies {
			if !seen[dep] {
				seen[dep] = true
				p.Dependencies = append(p.Dependencies, dep)
			}
		}
	}
	sort.Strings(p.Dependencies)
	p.FileCount = len(p.Files)
	if p.FileCount > 0 {
		p.AverageComplexity = float64(complexitySum) / float64(p.FileCount)
	}
	p.Imports = OptimizeImports(p.Dependencies)
}
