// Package build holds build-time information set through linker flags.
package build

var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info returns the one-line version description printed by the CLI.
func Info() string {
	return Version + " (commit: " + Commit + ", date: " + Date + ")"
}
