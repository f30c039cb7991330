package ports

import "go.trai.ch/exsd/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and reads the configuration for the working directory cwd.
	Load(cwd string) (*domain.Config, error)
}
