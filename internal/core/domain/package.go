package domain

import "strings"

// PackageRecord is an installed or listed package identified by name and version.
type PackageRecord struct {
	// Name is the package name, possibly scoped (e.g. "@scope/name").
	Name string

	// Version is the exact version string.
	Version string

	// FullName is the canonical "name@version" identifier.
	FullName string
}

// Identifier joins a name and version into the canonical "name@version" form.
func Identifier(name, version string) string {
	return name + "@" + version
}

// NewPackageRecord builds a PackageRecord from its parts.
func NewPackageRecord(name, version string) PackageRecord {
	return PackageRecord{
		Name:     name,
		Version:  version,
		FullName: Identifier(name, version),
	}
}

// ParsePackageString splits a "name@version" identifier on its last '@'.
// Names may contain '@' themselves, so only the last occurrence separates the version.
// An identifier without any '@' returns ErrInvalidPackageFormat.
func ParsePackageString(fullName string) (PackageRecord, error) {
	i := strings.LastIndexByte(fullName, '@')
	if i == -1 {
		return PackageRecord{}, Tag(ErrInvalidPackageFormat, "package", fullName)
	}

	return PackageRecord{
		Name:     fullName[:i],
		Version:  fullName[i+1:],
		FullName: fullName,
	}, nil
}
