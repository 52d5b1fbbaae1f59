package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code2project/analyzer"
	"code2project/inspector/graph"
)

func TestOptimizeImports(t *testing.T) {
	tests := []struct {
		name    string
		imports []string
		want    graph.ImportGroups
	}{
		{
			name:    "example from the pipeline",
			imports: []string{"react"},
			want:    graph.ImportGroups{Packages: []string{"react"}},
		},
		{
			name:    "partition of local and package imports",
			imports: []string{"react", "./App", "/abs/util", "axios"},
			want: graph.ImportGroups{
				Packages: []string{"axios", "react"},
				Local:    []string{"./App", "/abs/util"},
			},
		},
		{
			name:    "subpath reduces to the base package",
			imports: []string{"react-dom/client", "lodash/fp/map"},
			want:    graph.ImportGroups{Packages: []string{"lodash", "react-dom"}},
		},
		{
			name:    "scoped packages keep two segments",
			imports: []string{"@tanstack/react-query", "@tanstack/react-query/core"},
			want:    graph.ImportGroups{Packages: []string{"@tanstack/react-query"}},
		},
		{
			name:    "duplicates collapse and output is sorted",
			imports: []string{"zustand", "axios", "zustand", "./b", "./a"},
			want: graph.ImportGroups{
				Packages: []string{"axios", "zustand"},
				Local:    []string{"./a", "./b"},
			},
		},
		{
			name: "empty input",
			want: graph.ImportGroups{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzer.OptimizeImports(tc.imports)
			assert.Equal(t, tc.want.Packages, got.Packages)
			assert.Equal(t, tc.want.Local, got.Local)
		})
	}
}
