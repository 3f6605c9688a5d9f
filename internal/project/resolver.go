// Package project resolves which configured project a file belongs to.
package project

import (
	"path/filepath"

	"go-autoheader/internal/config"
)

// Resolve walks the ancestor directories of filePath upward, looking for one
// whose cleaned path equals a configured project root. Matching is exact
// path equality, never prefix matching. It returns nil when the file lies
// outside every configured project, which callers must treat as "skip this
// file", not as an error.
//
// filePath must be absolute; the walk is pure path manipulation and never
// touches the filesystem.
func Resolve(projects []config.Project, filePath string) *config.Project {
	if len(projects) == 0 {
		return nil
	}

	dir := filepath.Dir(filepath.Clean(filePath))
	for {
		for i := range projects {
			if filepath.Clean(projects[i].Root) == dir {
				return &projects[i]
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached.
			return nil
		}
		dir = parent
	}
}
