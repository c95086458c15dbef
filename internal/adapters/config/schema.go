package config

// Configfile represents the structure of the .lockscan.yaml configuration file.
type Configfile struct {
	Lockfile string   `yaml:"lockfile"`
	Lists    []string `yaml:"lists"`
	Embedded *bool    `yaml:"embedded"`
	Strict   *bool    `yaml:"strict"`
	Format   string   `yaml:"format"`
}
