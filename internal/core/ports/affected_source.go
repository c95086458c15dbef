package ports

// AffectedSource supplies raw "name@version" entries of compromised packages.
//
//go:generate mockgen -source=affected_source.go -destination=mocks/mock_affected_source.go -package=mocks
type AffectedSource interface {
	// Embedded returns the entries of the list compiled into the binary.
	Embedded() []string

	// ReadList returns the entries of a list file.
	ReadList(path string) ([]string, error)
}
