package rootcap

import (
	"os"
	"path/filepath"
)

// DefaultMarkers are the project files the marker capability checks when no
// custom list is configured.
var DefaultMarkers = []string{
	"go.mod",
	"package.json",
	"Cargo.toml",
	"pyproject.toml",
	"Makefile",
	".project-root",
	".hg",
	".svn",
}

// Markers locates a project root by walking upward until a directory
// contains one of the configured marker files.
type Markers struct {
	// Files overrides DefaultMarkers when non-empty.
	Files []string
}

func (Markers) Name() string { return "markers" }

func (m Markers) Root(path string) (string, error) {
	markers := m.Files
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	dir := startDir(path)
	if dir == "" {
		return "", nil
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return withSlash(dir), nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
