// Package generator emits boilerplate project scaffolding: a directory tree,
// static configuration files and a package manifest. It is a stateless
// template-emission path with no dependency on the analysis pipeline.
package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// directories is the fixed scaffold layout created for every project
var directories = []string{
	"src",
	"src/components",
	"src/utils",
	"src/services",
	"public",
	"public/assets",
}

// Generator creates project structures and writes configuration files
type Generator struct {
	baseDir string
	fs      afs.Service
}

// NewGenerator creates a generator rooted at baseDir ("." when empty)
func NewGenerator(baseDir string) *Generator {
	if baseDir == "" {
		baseDir = "."
	}
	return &Generator{
		baseDir: baseDir,
		fs:      afs.New(),
	}
}

// CreateStructure creates the fixed project directory tree under
// baseDir/projectName and returns a map of relative directory to the
// absolute path created. Creation is best effort with no rollback.
func (g *Generator) CreateStructure(ctx context.Context, projectName string) (map[string]string, error) {
	projectPath, err := filepath.Abs(filepath.Join(g.baseDir, projectName))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	created := make(map[string]string)
	for _, directory := range directories {
		dirPath := filepath.Join(projectPath, directory)
		if err := g.fs.Create(ctx, dirPath, 0755, true); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dirPath, err)
		}
		created[directory] = dirPath
	}
	return created, nil
}

// WriteConfigFiles writes every configuration file returned by ConfigFiles
// into the project directory
func (g *Generator) WriteConfigFiles(ctx context.Context, projectName string) error {
	projectPath, err := filepath.Abs(filepath.Join(g.baseDir, projectName))
	if err != nil {
		return fmt.Errorf("failed to resolve project path: %w", err)
	}
	for name, content := range ConfigFiles() {
		target := filepath.Join(projectPath, name)
		if err := g.fs.Upload(ctx, target, 0644, strings.NewReader(content)); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	return nil
}

// WriteManifest renders and writes the package manifest for the project
func (g *Generator) WriteManifest(ctx context.Context, projectName string, dependencies []string) error {
	manifest := NewManifest(projectName, dependencies)
	data, err := manifest.JSON()
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}
	target := filepath.Join(g.baseDir, projectName, "package.json")
	if err := g.fs.Upload(ctx, target, 0644, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
