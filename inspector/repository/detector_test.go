package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code2project/inspector/repository"
)

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		target   string
		wantType string
		wantName string
	}{
		{
			name: "javascript project",
			files: map[string]string{
				"package.json": `{"name": "demo-app", "version": "1.0.0"}`,
				"src/App.jsx":  "export default function App() {}",
			},
			target:   "src/App.jsx",
			wantType: "javascript",
			wantName: "demo-app",
		},
		{
			name: "go project",
			files: map[string]string{
				"go.mod":  "module example.com/demo\n\ngo 1.23\n",
				"main.go": "package main",
			},
			target:   "main.go",
			wantType: "go",
			wantName: "example.com/demo",
		},
		{
			name: "package.json without name falls back to directory",
			files: map[string]string{
				"package.json": `{"version": "1.0.0"}`,
			},
			target:   "package.json",
			wantType: "javascript",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tc.files {
				path := filepath.Join(root, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			}

			project, err := repository.New().DetectProject(filepath.Join(root, tc.target))
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, project.Type)
			assert.Equal(t, root, project.RootPath)
			if tc.wantName != "" {
				assert.Equal(t, tc.wantName, project.Name)
			}
		})
	}
}

func TestDetector_DetectProjectMissingPath(t *testing.T) {
	_, err := repository.New().DetectProject(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
