// Package optimizer cleans up source text with shallow, single-pass
// transformations: comment stripping, whitespace minification and
// bracket-depth reformatting. None of them understand the language, comment
// markers inside string literals are treated as comments and same-line
// bracket pairs skew the indentation. These limitations are accepted.
package optimizer

import (
	"regexp"
	"strings"
)

// DefaultIndent is the indentation width used when none is configured
const DefaultIndent = 2

var (
	lineCommentPattern  = regexp.MustCompile(`(?m)//.*$`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	punctuationSpacing  = regexp.MustCompile(`\s*([{}();,])\s*`)
)

// RemoveComments strips // line comments and /* */ block comments
func RemoveComments(src string) string {
	src = lineCommentPattern.ReplaceAllString(src, "")
	return blockCommentPattern.ReplaceAllString(src, "")
}

// Minify collapses whitespace runs to a single space and removes whitespace
// adjacent to structural punctuation
func Minify(src string) string {
	src = whitespaceRun.ReplaceAllString(src, " ")
	src = punctuationSpacing.ReplaceAllString(src, "$1")
	return strings.TrimSpace(src)
}

// Format re-indents source text by tracking a single integer bracket depth:
// a trimmed line starting with a closing bracket dedents, a trimmed line
// ending with an opening bracket indents the lines after it. Blank lines are
// dropped. There is no bracket stack.
func Format(src string, indent int) string {
	if indent <= 0 {
		indent = DefaultIndent
	}

	var formatted []string
	level := 0
	for _, line := range strings.Split(src, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if startsWithAny(stripped, "}", "]", ")") {
			level = max(0, level-1)
		}
		formatted = append(formatted, strings.Repeat(" ", level*indent)+stripped)
		if endsWithAny(stripped, "{", "[", "(") {
			level++
		}
	}
	return strings.Join(formatted, "\n")
}

func startsWithAny(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
