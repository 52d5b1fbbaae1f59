package inspector

import (
	"fmt"
	"path/filepath"
	"strings"

	"code2project/inspector/graph"
	"code2project/inspector/jsx"
)

// Inspector provides an interface for inspecting source code
type Inspector interface {
	// InspectSource extracts dependency and component information from a byte slice
	InspectSource(src []byte) (*graph.File, error)

	// InspectFile extracts dependency and component information from a source file
	InspectFile(filename string) (*graph.File, error)

	// InspectPackage inspects a package directory and aggregates per-file results
	InspectPackage(packagePath string) (*graph.Package, error)
}

// Factory creates appropriate inspectors based on file type
type Factory struct {
	config *graph.Config
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Factory{config: config}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".js", ".jsx", ".ts", ".tsx":
		return jsx.NewInspector(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(filename string) (*graph.File, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(filename)
}

// InspectPackage is a convenience method that determines the language from the
// files in the directory and inspects the whole package
func (f *Factory) InspectPackage(packagePath string) (*graph.Package, error) {
	entries, err := filepath.Glob(filepath.Join(packagePath, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}
	for _, entry := range entries {
		if jsx.SupportedExt(filepath.Ext(entry)) {
			return jsx.NewInspector(f.config).InspectPackage(packagePath)
		}
	}
	return nil, fmt.Errorf("unable to determine language for package: %s", packagePath)
}
