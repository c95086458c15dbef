package ports

import "go.trai.ch/lockscan/internal/core/domain"

// ConfigLoader defines the interface for loading the optional project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for the configuration file.
	// It returns the default configuration when none is found.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration from an explicit path.
	LoadFile(path string) (*domain.Config, error)
}
