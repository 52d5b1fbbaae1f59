package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code2project/optimizer"
)

func TestRemoveComments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "line comment",
			source: "const a = 1; // note\nconst b = 2;",
			want:   "const a = 1; \nconst b = 2;",
		},
		{
			name:   "block comment across lines",
			source: "const a = 1;\n/* multi\nline */const b = 2;",
			want:   "const a = 1;\nconst b = 2;",
		},
		{
			name:   "comment-like sequence inside string is stripped anyway",
			source: `const url = "http://example.com";`,
			want:   `const url = "http:`,
		},
		{
			name:   "no comments",
			source: "const a = 1;",
			want:   "const a = 1;",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, optimizer.RemoveComments(tc.source))
		})
	}
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "collapses whitespace and tightens punctuation",
			source: "function  add ( a , b ) {\n  return a + b ;\n}",
			want:   "function add(a,b){return a + b;}",
		},
		{
			name:   "already minimal",
			source: "const a=1;",
			want:   "const a=1;",
		},
		{
			name:   "empty input",
			source: "",
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, optimizer.Minify(tc.source))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		indent int
		want   string
	}{
		{
			name:   "nested blocks",
			source: "function test() {\nif (x) {\nreturn 1;\n}\n}",
			indent: 2,
			want:   "function test() {\n  if (x) {\n    return 1;\n  }\n}",
		},
		{
			name:   "blank lines are dropped",
			source: "const a = 1;\n\n\nconst b = 2;",
			indent: 2,
			want:   "const a = 1;\nconst b = 2;",
		},
		{
			name:   "wider indent",
			source: "{\nx\n}",
			indent: 4,
			want:   "{\n    x\n}",
		},
		{
			name:   "closing bracket never dedents below zero",
			source: "}\nconst a = 1;",
			indent: 2,
			want:   "}\nconst a = 1;",
		},
		{
			name:   "zero indent falls back to the default",
			source: "{\nx\n}",
			indent: 0,
			want:   "{\n  x\n}",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, optimizer.Format(tc.source, tc.indent))
		})
	}
}
