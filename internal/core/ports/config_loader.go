package ports

import "go.trai.ch/lithos/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory and returns the validated site config.
	Load(cwd string) (*domain.SiteConfig, error)
}
