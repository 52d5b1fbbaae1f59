package jsx

import "regexp"

// Fixed extraction patterns applied to raw source text. Matching is purely
// syntactic: a hit inside a string literal or comment is indistinguishable
// from real code. This is a known-accuracy tradeoff of the approach.
var (
	// ES6 import sources: import X from 'pkg'
	importPattern = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)

	// CommonJS require targets: require('pkg')
	requirePattern = regexp.MustCompile(`require\(['"]([^'"]+)['"]\)`)

	// Function components: function Name(
	funcPattern = regexp.MustCompile(`(?:export\s+)?(?:default\s+)?function\s+(\w+)`)

	// Arrow function components: const Name = (...) =>
	arrowPattern = regexp.MustCompile(`(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*\([^)]*\)\s*=>`)

	// Class components: class Name extends React.Component
	classPattern = regexp.MustCompile(`class\s+(\w+)\s+extends\s+(?:React\.)?Component`)
)

// findAll returns the first capture group of every match of pattern in src
func findAll(pattern *regexp.Regexp, src string) []string {
	matches := pattern.FindAllStringSubmatch(src, -1)
	var result []string
	for _, match := range matches {
		if len(match) > 1 {
			result = append(result, match[1])
		}
	}
	return result
}
