package generator

import (
	"encoding/json"
	"strings"
)

// placeholderVersion is assigned to dependencies absent from the version table
const placeholderVersion = "^1.0.0"

// dependencyVersions is the static dependency-name-to-version lookup table
var dependencyVersions = map[string]string{
	"react":                 "^18.3.1",
	"react-dom":             "^18.3.1",
	"react-router-dom":      "^6.28.0",
	"axios":                 "^1.7.9",
	"lodash":                "^4.17.21",
	"moment":                "^2.30.1",
	"classnames":            "^2.5.1",
	"@tanstack/react-query": "^5.62.8",
	"zustand":               "^5.0.2",
	"framer-motion":         "^11.15.0",
}

// devDependencies is the fixed devDependency block of every manifest
var devDependencies = map[string]string{
	"@types/react":                     "^18.3.12",
	"@types/react-dom":                 "^18.3.1",
	"@typescript-eslint/eslint-plugin": "^8.15.0",
	"@typescript-eslint/parser":        "^8.15.0",
	"@vitejs/plugin-react":             "^4.3.4",
	"eslint":                           "^9.15.0",
	"eslint-plugin-react-hooks":        "^5.0.0",
	"eslint-plugin-react-refresh":      "^0.4.14",
	"typescript":                       "^5.6.2",
	"vite":                             "^6.0.1",
}

// Manifest is a package.json description with fixed scripts and
// table-resolved dependency versions
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// NewManifest assembles a manifest for the named project. The name is
// lowercased with spaces replaced by dashes, each dependency gets its version
// from the lookup table or the placeholder when absent.
func NewManifest(projectName string, dependencies []string) *Manifest {
	if projectName == "" {
		projectName = "my-project"
	}
	return &Manifest{
		Name:    strings.ReplaceAll(strings.ToLower(projectName), " ", "-"),
		Version: "1.0.0",
		Private: true,
		Type:    "module",
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "tsc && vite build",
			"preview": "vite preview",
			"lint":    "eslint . --ext ts,tsx --report-unused-disable-directives --max-warnings 0",
		},
		Dependencies:    resolveVersions(dependencies),
		DevDependencies: devDependencies,
	}
}

// JSON renders the manifest as indented package.json content
func (m *Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func resolveVersions(dependencies []string) map[string]string {
	versions := make(map[string]string, len(dependencies))
	for _, dependency := range dependencies {
		version, ok := dependencyVersions[dependency]
		if !ok {
			version = placeholderVersion
		}
		versions[dependency] = version
	}
	return versions
}
