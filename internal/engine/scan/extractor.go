// Package scan extracts installed packages from npm lockfiles and matches them against
// the affected set.
package scan

import (
	"slices"
	"strings"

	"go.trai.ch/lockscan/internal/core/domain"
)

const (
	packagesKey    = "packages"
	versionKey     = "version"
	nodeModulesDir = "node_modules"
)

// Extractor derives "name@version" identifiers from a parsed lockfile.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract walks the top-level "packages" map of manifest and returns the sorted, unique
// identifiers of packages installed directly under node_modules. Nested node_modules
// copies, the root project entry and entries without a version are skipped.
func (e *Extractor) Extract(manifest domain.Value) ([]string, error) {
	root, ok := manifest.AsObject()
	if !ok {
		return nil, domain.Tag(domain.ErrInvalidJSONInput, "reason", "manifest root is not an object")
	}

	packagesValue, ok := root.Get(packagesKey)
	if !ok {
		return nil, domain.Tag(domain.ErrInvalidJSONInput, "reason", "manifest has no packages field")
	}
	packages, ok := packagesValue.AsObject()
	if !ok {
		return nil, domain.Tag(domain.ErrInvalidJSONInput, "reason", "packages field is not an object")
	}

	seen := make(map[string]struct{}, packages.Len())
	result := make([]string, 0, packages.Len())

	packages.Range(func(key string, entry domain.Value) bool {
		id, ok := identifierFor(key, entry)
		if !ok {
			return true
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			result = append(result, id)
		}
		return true
	})

	slices.Sort(result)
	return result, nil
}

// identifierFor returns the identifier for a single package-path entry.
func identifierFor(key string, entry domain.Value) (string, bool) {
	if key == "" {
		return "", false
	}

	version, ok := versionOf(entry)
	if !ok {
		return "", false
	}

	name, ok := packageName(key)
	if !ok {
		return "", false
	}

	return domain.Identifier(name, version), true
}

func versionOf(entry domain.Value) (string, bool) {
	obj, ok := entry.AsObject()
	if !ok {
		return "", false
	}
	v, ok := obj.Get(versionKey)
	if !ok {
		return "", false
	}
	version, ok := v.AsString()
	if !ok || version == "" {
		return "", false
	}
	return version, true
}

// packageName maps "node_modules/<name>" and "node_modules/@scope/<name>" to the package name.
func packageName(key string) (string, bool) {
	segments := strings.Split(key, "/")
	if segments[0] != nodeModulesDir {
		return "", false
	}

	switch len(segments) {
	case 2:
		// A bare "@scope" directory is not a package.
		if segments[1] == "" || strings.HasPrefix(segments[1], "@") {
			return "", false
		}
		return segments[1], true
	case 3:
		if !strings.HasPrefix(segments[1], "@") || len(segments[1]) == 1 || segments[2] == "" {
			return "", false
		}
		return segments[1] + "/" + segments[2], true
	default:
		return "", false
	}
}
