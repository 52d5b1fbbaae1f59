package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileInfo is a read-only snapshot of filesystem metadata for a single path,
// created per call and discarded after use
type FileInfo struct {
	Path      string    `json:"path" yaml:"path"`
	Name      string    `json:"name" yaml:"name"`
	Size      int64     `json:"size" yaml:"size"`
	Extension string    `json:"extension" yaml:"extension"`
	Modified  time.Time `json:"modified" yaml:"modified"`
}

// Stat returns metadata for the given path. A missing path is the one
// explicit failure of the analysis pipeline.
func Stat(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", path, err)
	}
	return &FileInfo{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		Extension: filepath.Ext(path),
		Modified:  info.ModTime(),
	}, nil
}
