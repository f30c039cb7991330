// Package domain contains the extension-point schema model.
package domain

import (
	"slices"
	"strings"
)

// ExtensionPointDefinition is the parsed form of one EXSD file.
type ExtensionPointDefinition struct {
	// Plugin is the identifier of the plugin declaring the extension point.
	Plugin string `json:"plugin"`
	// ID is the extension point id, either local or already qualified by Plugin.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Includes lists the schema locations pulled in by <include>, in document order.
	Includes []string `json:"includes,omitempty"`
	// Extension describes the <element name="extension">, if present.
	Extension *ElementDefinition `json:"extension,omitempty"`
	// Elements holds every other top-level element, in document order.
	Elements []ElementDefinition `json:"elements"`
}

// Point returns the fully qualified extension point identifier.
func (d *ExtensionPointDefinition) Point() string {
	if strings.HasPrefix(d.ID, d.Plugin) {
		return d.ID
	}
	return d.Plugin + "." + d.ID
}

// Element returns the top-level element with the given name.
// The extension element is not considered.
func (d *ExtensionPointDefinition) Element(name string) (*ElementDefinition, bool) {
	for i := range d.Elements {
		if d.Elements[i].Name == name {
			return &d.Elements[i], true
		}
	}
	return nil, false
}

// Equal reports whether d and other are structurally equal.
func (d *ExtensionPointDefinition) Equal(other *ExtensionPointDefinition) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Plugin == other.Plugin &&
		d.ID == other.ID &&
		d.Name == other.Name &&
		slices.Equal(d.Includes, other.Includes) &&
		d.Extension.Equal(other.Extension) &&
		slices.EqualFunc(d.Elements, other.Elements, func(a, b ElementDefinition) bool {
			return a.Equal(&b)
		})
}

// Schema pairs a definition with the file it was loaded from.
// Path is the canonical path and identifies the schema during include traversal.
type Schema struct {
	Path       string                    `json:"path"`
	Definition *ExtensionPointDefinition `json:"definition"`
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
