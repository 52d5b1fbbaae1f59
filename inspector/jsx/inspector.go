// Package jsx extracts dependencies and UI components from JavaScript,
// TypeScript and JSX source text using fixed regular expressions. There is no
// parsing involved: no brace matching, no scope awareness, no grammar.
package jsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code2project/inspector/graph"
)

// Inspector provides functionality to inspect front-end source text and
// extract dependency and component information
type Inspector struct {
	config *graph.Config
}

// NewInspector creates a new Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{config: config}
}

// ExtractDependencies returns the deduplicated set of module paths referenced
// by ES6 import and CommonJS require constructs in src. Order follows first
// appearance in the text.
func ExtractDependencies(src string) []string {
	var raw []string
	raw = append(raw, findAll(importPattern, src)...)
	raw = append(raw, findAll(requirePattern, src)...)

	seen := make(map[string]bool)
	var deps []string
	for _, dep := range raw {
		if seen[dep] {
			continue
		}
		seen[dep] = true
		deps = append(deps, dep)
	}
	return deps
}

// ExtractComponents returns every function, arrow-function and class
// component declaration matched in src. Duplicate names from different
// patterns are not reconciled.
func ExtractComponents(src string) []*graph.Component {
	var components []*graph.Component
	for _, name := range findAll(funcPattern, src) {
		components = append(components, &graph.Component{Name: name, Kind: graph.KindFunction})
	}
	for _, name := range findAll(arrowPattern, src) {
		components = append(components, &graph.Component{Name: name, Kind: graph.KindFunction})
	}
	for _, name := range findAll(classPattern, src) {
		components = append(components, &graph.Component{Name: name, Kind: graph.KindClass})
	}
	return components
}

// InspectSource extracts dependencies and components from source text
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(src, "source.jsx")
}

// InspectFile reads and inspects a single source file
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(src, filename)
}

// InspectPackage inspects a directory of source files and aggregates the
// per-file results
func (i *Inspector) InspectPackage(packagePath string) (*graph.Package, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	pkg := &graph.Package{
		Name: filepath.Base(absPath),
		Path: absPath,
	}

	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != absPath && !i.config.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !SupportedExt(filepath.Ext(path)) {
			return nil
		}
		if i.config.SkipTests && strings.Contains(filepath.Base(path), ".test.") {
			return nil
		}

		file, err := i.InspectFile(path)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
		pkg.AddFile(file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking package directory: %w", err)
	}

	if len(pkg.FileSet) == 0 {
		return nil, fmt.Errorf("no source files found in package: %s", packagePath)
	}
	return pkg, nil
}

func (i *Inspector) inspect(src []byte, filename string) (*graph.File, error) {
	text := string(src)
	return &graph.File{
		Name:         filepath.Base(filename),
		Path:         filename,
		Dependencies: ExtractDependencies(text),
		Components:   ExtractComponents(text),
		Fingerprint:  graph.Fingerprint(src),
	}, nil
}

// SupportedExt reports whether ext names a file type this inspector handles
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".js", ".jsx", ".ts", ".tsx":
		return true
	}
	return false
}
