package analyzer

import (
	"fmt"
	"strings"

	"code2project/inspector/graph"
)

var (
	statementEndings = []string{";", "{", "}", ","}
	statementStarts  = []string{"if", "for", "while", "function", "class", "//"}
)

// CheckSyntax performs a count-based bracket balance check plus a
// missing-semicolon heuristic. Bracket validation compares open/close counts
// only, nesting order is not checked, so "{(})" passes. The semicolon pass
// has many false positives (multi-line expressions among them) and is
// reported as warnings, never errors.
func CheckSyntax(src string) graph.SyntaxResult {
	var errors []string
	var warnings []string

	if strings.Count(src, "{") != strings.Count(src, "}") {
		errors = append(errors, "Mismatched curly braces")
	}
	if strings.Count(src, "(") != strings.Count(src, ")") {
		errors = append(errors, "Mismatched parentheses")
	}
	if strings.Count(src, "[") != strings.Count(src, "]") {
		errors = append(errors, "Mismatched square brackets")
	}

	for i, line := range strings.Split(src, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || hasAnySuffix(stripped, statementEndings) || hasAnyPrefix(stripped, statementStarts) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("Line %d: Missing semicolon", i+1))
	}

	return graph.SyntaxResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
