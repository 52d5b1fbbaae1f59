package graph

// File represents a single inspected source file with everything the
// pattern matchers pulled out of its text
type File struct {
	Name         string       `json:"name" yaml:"name"`
	Path         string       `json:"path" yaml:"path"`
	Dependencies []string     `json:"dependencies" yaml:"dependencies"`
	Components   []*Component `json:"components" yaml:"components"`
	Fingerprint  string       `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Package represents a directory of inspected source files
type Package struct {
	Name    string  `json:"name" yaml:"name"`
	Path    string  `json:"path" yaml:"path"`
	FileSet []*File `json:"files" yaml:"files"`
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	p.FileSet = append(p.FileSet, file)
}

// Dependencies returns the union of dependencies across the package's
// files, first-seen order, deduplicated
func (p *Package) Dependencies() []string {
	seen := make(map[string]bool)
	var result []string
	for _, file := range p.FileSet {
		for _, dep := range file.Dependencies {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			result = append(result, dep)
		}
	}
	return result
}

// Components returns all components across the package's files
func (p *Package) Components() []*Component {
	var result []*Component
	for _, file := range p.FileSet {
		result = append(result, file.Components...)
	}
	return result
}
