package analyzer

import (
	"strings"

	"code2project/inspector/graph"
)

// complexityKeywords is the fixed token table feeding the heuristic
// complexity score. Occurrences are counted as substrings anywhere in the
// text, including inside strings and comments.
var complexityKeywords = []string{"if", "else", "for", "while", "case", "&&", "||", "?"}

// CalculateMetrics classifies lines and derives the heuristic complexity
// score for src. A line counts as comment only when its trimmed form starts
// with //, so code with a trailing comment still counts as code.
// Invariant: CodeLines + CommentLines + BlankLines == TotalLines.
func CalculateMetrics(src string) graph.Metrics {
	lines := strings.Split(src, "\n")

	var codeLines, commentLines int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "//"):
			commentLines++
		default:
			codeLines++
		}
	}

	total := len(lines)
	return graph.Metrics{
		TotalLines:      total,
		CodeLines:       codeLines,
		CommentLines:    commentLines,
		BlankLines:      total - codeLines - commentLines,
		ComplexityScore: complexityScore(src),
	}
}

// complexityScore is a crude McCabe-style approximation: 1 plus one for
// every keyword occurrence. Substring counting overcounts on purpose, the
// score is a proxy and never drops below 1.
func complexityScore(src string) int {
	score := 1
	for _, keyword := range complexityKeywords {
		score += strings.Count(src, keyword)
	}
	return score
}
