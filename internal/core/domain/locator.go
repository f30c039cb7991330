package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SchemaProtocol prefixes every schema location.
const SchemaProtocol = "schema://"

// Locator is a parsed schema://<bundle>/<path> schema location.
type Locator struct {
	// Bundle is the symbolic name of the bundle holding the schema.
	Bundle string
	// Path is the slash-separated path of the schema relative to the bundle root.
	Path string
}

// ParseLocator splits a schema location into its bundle and relative path.
func ParseLocator(location string) (Locator, error) {
	rest, ok := strings.CutPrefix(location, SchemaProtocol)
	if !ok {
		return Locator{}, zerr.With(ErrInvalidLocator, "location", location)
	}
	bundle, path, ok := strings.Cut(rest, "/")
	if !ok || bundle == "" || strings.Trim(path, "/") == "" {
		return Locator{}, zerr.With(ErrInvalidLocator, "location", location)
	}
	return Locator{Bundle: bundle, Path: path}, nil
}

// String returns the locator in schema:// form.
func (l Locator) String() string {
	return SchemaProtocol + l.Bundle + "/" + l.Path
}
