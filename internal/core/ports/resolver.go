package ports

import "go.trai.ch/exsd/internal/core/domain"

// SchemaLocator maps schema:// locations to files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SchemaLocator interface {
	// Resolve returns the canonical path of the schema file for location.
	Resolve(location string) (string, bool)
}

// DefinitionLoader materialises the schema behind a location.
type DefinitionLoader interface {
	// LoadExtensionPoint resolves location and returns the schema stored there.
	LoadExtensionPoint(location string) (domain.Schema, bool)
}
