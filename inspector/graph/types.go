package graph

// ComponentKind distinguishes how a UI component was declared
type ComponentKind string

const (
	// KindFunction covers function and arrow-function components
	KindFunction ComponentKind = "function"
	// KindClass covers class components extending Component
	KindClass ComponentKind = "class"
)

// Component represents a detected UI component declaration. Matches coming
// from different patterns are not reconciled, duplicate names may appear.
type Component struct {
	Name string        `json:"name" yaml:"name"`
	Kind ComponentKind `json:"kind" yaml:"kind"`
}

// Metrics holds line classification counts and the heuristic complexity
// score for a single source text. All fields are derived on every call.
type Metrics struct {
	TotalLines      int `json:"totalLines" yaml:"totalLines"`
	CodeLines       int `json:"codeLines" yaml:"codeLines"`
	CommentLines    int `json:"commentLines" yaml:"commentLines"`
	BlankLines      int `json:"blankLines" yaml:"blankLines"`
	ComplexityScore int `json:"complexityScore" yaml:"complexityScore"`
}

// ImportGroups partitions raw import paths into external package names and
// local (relative or absolute) imports. Both lists are deduplicated and
// lexicographically sorted.
type ImportGroups struct {
	Packages []string `json:"packages" yaml:"packages"`
	Local    []string `json:"local" yaml:"local"`
}

// SyntaxResult captures the outcome of the count-based syntax check.
// Valid reflects errors only, warnings do not invalidate the source.
type SyntaxResult struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
