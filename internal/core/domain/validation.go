package domain

import (
	"regexp"
	"strings"
)

const (
	// MaxFileSize is the largest manifest or list file accepted, in bytes.
	MaxFileSize int64 = 50 * 1024 * 1024

	// MaxPackageNameLength follows the npm registry limit.
	MaxPackageNameLength = 214

	// MaxVersionLength bounds version strings.
	MaxVersionLength = 100

	// MaxPackageStringLength bounds "name@version" identifiers.
	MaxPackageStringLength = 1000
)

var (
	packageNameRegex = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	versionRegex     = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)
)

// ValidatePackageName reports whether name is a valid, optionally scoped, npm package name.
func ValidatePackageName(name string) bool {
	if name == "" || len(name) > MaxPackageNameLength {
		return false
	}
	return packageNameRegex.MatchString(name)
}

// ValidateVersion reports whether version is major.minor.patch with optional
// pre-release and build suffixes.
func ValidateVersion(version string) bool {
	if version == "" || len(version) > MaxVersionLength {
		return false
	}
	return versionRegex.MatchString(version)
}

// ValidatePackageString checks a "name@version" identifier against the length, name and
// version rules.
func ValidatePackageString(fullName string) error {
	if fullName == "" {
		return ErrInvalidPackageString
	}

	if len(fullName) > MaxPackageStringLength {
		return Tag(ErrPackageStringTooLong, "length", len(fullName))
	}

	i := strings.LastIndexByte(fullName, '@')
	if i <= 0 {
		return Tag(ErrInvalidPackageFormat, "package", fullName)
	}

	name, version := fullName[:i], fullName[i+1:]
	if !ValidatePackageName(name) {
		return Tag(ErrInvalidPackageName, "name", name)
	}
	if !ValidateVersion(version) {
		return Tag(ErrInvalidVersion, "version", version)
	}

	return nil
}

// ValidateArguments returns the manifest path from the positional arguments.
func ValidateArguments(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoArguments
	}

	path := args[0]
	if path == "" {
		return "", ErrInvalidPathArgument
	}
	if strings.ContainsRune(path, 0) {
		return "", ErrNullBytesInPath
	}

	return path, nil
}
