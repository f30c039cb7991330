package ports

import (
	"io"

	"go.trai.ch/exsd/internal/core/domain"
)

// SchemaParser turns EXSD documents into definitions.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type SchemaParser interface {
	Parse(r io.Reader) (*domain.ExtensionPointDefinition, error)
}
