package ports

// PathGuard validates user-supplied filesystem paths.
//
//go:generate mockgen -source=path_guard.go -destination=mocks/mock_path_guard.go -package=mocks
type PathGuard interface {
	// Validate returns the canonical absolute form of input, or an error if input is empty,
	// contains NUL bytes, traverses upwards, or lies outside the working directory.
	Validate(input string) (string, error)
}
