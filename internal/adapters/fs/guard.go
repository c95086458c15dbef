// Package fs provides filesystem adapters for validating paths and reading bounded input files.
package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Guard validates user-supplied paths against the working directory.
type Guard struct {
	getwd func() (string, error)
}

// NewGuard creates a Guard bound to the process working directory.
func NewGuard() *Guard {
	return &Guard{getwd: os.Getwd}
}

// NewGuardAt creates a Guard bound to a fixed working directory.
func NewGuardAt(cwd string) *Guard {
	return &Guard{getwd: func() (string, error) { return cwd, nil }}
}

// Validate returns the cleaned absolute form of input.
// The path is resolved before the traversal checks so that collapsible segments such as
// "a/../b" are accepted while anything escaping the working directory is rejected.
func (g *Guard) Validate(input string) (string, error) {
	if input == "" {
		return "", domain.ErrInvalidPath
	}
	if strings.ContainsRune(input, 0) {
		return "", domain.ErrNullBytesInPath
	}

	cwd, err := g.getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	cwd = filepath.Clean(cwd)

	resolved := input
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(cwd, resolved)
	}
	resolved = filepath.Clean(resolved)

	if hasParentSegment(resolved) || strings.Contains(resolved, "~") {
		return "", domain.Tag(domain.ErrPathTraversal, "path", input)
	}

	if !within(cwd, resolved) {
		if filepath.IsAbs(input) {
			return "", domain.Tag(domain.ErrAbsolutePathOutsideCwd, "path", input)
		}
		return "", domain.Tag(domain.ErrPathTraversal, "path", input)
	}

	return resolved, nil
}

func hasParentSegment(path string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(path), "/"), "..")
}

// within reports whether target is root or lies below it. Both paths must be clean.
func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
