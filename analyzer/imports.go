package analyzer

import (
	"sort"
	"strings"

	"code2project/inspector/graph"
)

// OptimizeImports classifies each raw import path as either a local import
// (starting with "." or "/") or an external package. For external packages the
// package identity is the first path segment, or the first two segments for
// scoped packages ("@scope/name"). Every input lands in exactly one bucket and
// both output lists are deduplicated and sorted.
func OptimizeImports(imports []string) graph.ImportGroups {
	packages := make(map[string]bool)
	local := make(map[string]bool)

	for _, imp := range imports {
		if strings.HasPrefix(imp, ".") || strings.HasPrefix(imp, "/") {
			local[imp] = true
			continue
		}
		packages[packageName(imp)] = true
	}

	return graph.ImportGroups{
		Packages: sortedKeys(packages),
		Local:    sortedKeys(local),
	}
}

// packageName reduces an import path to its package identity
func packageName(imp string) string {
	segments := strings.Split(imp, "/")
	if strings.HasPrefix(imp, "@") && len(segments) > 1 {
		return strings.Join(segments[:2], "/")
	}
	return segments[0]
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
