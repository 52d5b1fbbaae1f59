package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code2project/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.False(t, cfg.SkipTests)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, ".", cfg.BaseDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "indentWidth: 4\nskipTests: true\nformat: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".code2project.yaml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.True(t, cfg.SkipTests)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ".", cfg.BaseDir, "unset keys keep their defaults")
}
