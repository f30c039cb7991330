package ports

import "go.trai.ch/exsd/internal/core/domain"

// BundleManager gives access to the bundles of the target platform.
//
//go:generate mockgen -source=bundles.go -destination=mocks/mock_bundles.go -package=mocks
type BundleManager interface {
	// Bundle returns the bundle with the given symbolic name.
	Bundle(symbolicName string) (*domain.Bundle, bool)
	// Bundles returns every known bundle, ordered by symbolic name.
	Bundles() []domain.Bundle
}

// ModuleProvider lists the plugin modules of the current project.
type ModuleProvider interface {
	Modules() []domain.Module
}
