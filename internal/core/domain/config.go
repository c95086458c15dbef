package domain

const (
	// DefaultLockfileName is the manifest looked up when a directory is scanned.
	DefaultLockfileName = "package-lock.json"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = ".lockscan.yaml"
)

// Config holds the settings that can come from a configuration file.
// Zero values mean "not set" for the optional fields.
type Config struct {
	// Path is the configuration file that was loaded, or empty if none was found.
	Path string

	// Lockfile is the manifest name used when the scanned path is a directory.
	Lockfile string

	// Lists are extra affected-list files, already resolved against the config directory.
	Lists []string

	// Embedded includes the built-in affected list when nil or true.
	Embedded *bool

	// Strict enables load-time validation of list entries when nil or true.
	Strict *bool

	// Format is the configured output format.
	Format Format
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Lockfile: DefaultLockfileName,
		Format:   FormatAuto,
	}
}

// UseEmbedded reports whether the built-in list should be loaded.
func (c *Config) UseEmbedded() bool {
	return c.Embedded == nil || *c.Embedded
}

// UseStrict reports whether list entries are validated when loaded.
func (c *Config) UseStrict() bool {
	return c.Strict == nil || *c.Strict
}
