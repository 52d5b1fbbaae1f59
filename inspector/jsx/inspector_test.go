package jsx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code2project/inspector/graph"
	"code2project/inspector/jsx"
)

func TestExtractDependencies(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "deduplicated ES6 imports",
			source: "import React from 'react';\nimport { useState } from 'react';",
			want:   []string{"react"},
		},
		{
			name:   "mixed import styles",
			source: `import axios from "axios";` + "\n" + `const lodash = require('lodash');`,
			want:   []string{"axios", "lodash"},
		},
		{
			name:   "relative imports",
			source: "import App from './App';\nimport { api } from '../services/api';",
			want:   []string{"./App", "../services/api"},
		},
		{
			name:   "no imports",
			source: "const x = 1;",
			want:   nil,
		},
		{
			name: "match inside comment is kept",
			source: `// import old from 'legacy';
import React from 'react';`,
			want: []string{"legacy", "react"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsx.ExtractDependencies(tc.source))
		})
	}
}

func TestExtractComponents(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []*graph.Component
	}{
		{
			name:   "function component",
			source: "export default function App() {\n  return <div/>;\n}",
			want:   []*graph.Component{{Name: "App", Kind: graph.KindFunction}},
		},
		{
			name:   "arrow function component",
			source: "const Button = ({ text, onClick }) => <button onClick={onClick}>{text}</button>;",
			want:   []*graph.Component{{Name: "Button", Kind: graph.KindFunction}},
		},
		{
			name:   "class component",
			source: "class Counter extends React.Component {\n  render() { return null; }\n}",
			want:   []*graph.Component{{Name: "Counter", Kind: graph.KindClass}},
		},
		{
			name: "duplicates are not reconciled",
			source: `function Widget() {}
const Widget = () => null;`,
			want: []*graph.Component{
				{Name: "Widget", Kind: graph.KindFunction},
				{Name: "Widget", Kind: graph.KindFunction},
			},
		},
		{
			name:   "plain class is not a component",
			source: "class Helper {\n  run() {}\n}",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsx.ExtractComponents(tc.source))
		})
	}
}

func TestInspector_InspectSource(t *testing.T) {
	inspector := jsx.NewInspector(nil)
	file, err := inspector.InspectSource([]byte(`import React from 'react';

function App() {
  return <div>hello</div>;
}`))
	assert.NoError(t, err)
	assert.Equal(t, "source.jsx", file.Name)
	assert.Equal(t, []string{"react"}, file.Dependencies)
	assert.Len(t, file.Components, 1)
	assert.NotEmpty(t, file.Fingerprint)
}

func TestSupportedExt(t *testing.T) {
	assert.True(t, jsx.SupportedExt(".jsx"))
	assert.True(t, jsx.SupportedExt(".TSX"))
	assert.False(t, jsx.SupportedExt(".py"))
	assert.False(t, jsx.SupportedExt(""))
}
