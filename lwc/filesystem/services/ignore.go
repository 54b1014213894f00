// Package services holds the collaborators the Walker consults while
// descending: ignore-file matching for now.
package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreChecker interface for file ignore patterns
type IgnoreChecker interface {
	MatchesPath(path string) bool
}

// LoadIgnore compiles the gitignore-syntax file name inside dir. It returns
// nil and no error when the file does not exist.
func LoadIgnore(dir, name string) (IgnoreChecker, error) {
	if name == "" {
		return nil, nil
	}
	ignorePath := filepath.Join(dir, name)

	if _, err := os.Stat(ignorePath); err == nil {
		ignored, err := ignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s file: %w", name, err)
		}
		return ignored, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error checking for %s file: %w", name, err)
	}

	return nil, nil
}

// RootIgnore applies one root's ignore rules to paths beneath that root.
type RootIgnore struct {
	root    string
	checker IgnoreChecker
}

// NewRootIgnore binds checker to root. A nil checker ignores nothing.
func NewRootIgnore(root string, checker IgnoreChecker) *RootIgnore {
	return &RootIgnore{root: root, checker: checker}
}

// Ignored reports whether path, which must lie beneath the root, is excluded.
// Directory-only patterns ("build/") are matched with a trailing slash.
func (r *RootIgnore) Ignored(path string, isDir bool) bool {
	if r == nil || r.checker == nil {
		return false
	}
	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	if r.checker.MatchesPath(rel) {
		return true
	}
	return isDir && r.checker.MatchesPath(rel+"/")
}
