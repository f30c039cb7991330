package ports

import "go.trai.ch/exsd/internal/core/domain"

// DefinitionIndex is the authoritative store of previously indexed definitions.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type DefinitionIndex interface {
	// Ready reports whether the index can be queried. It is false while the index is rebuilding.
	Ready() bool
	// Read returns the indexed definition for the file at path.
	// It returns nil, nil when the file is not indexed or changed since it was indexed.
	Read(path string) (*domain.ExtensionPointDefinition, error)
}
