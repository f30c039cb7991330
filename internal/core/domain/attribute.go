package domain

import "slices"

// AttributeDefinition describes one schema attribute declaration.
type AttributeDefinition struct {
	Name  string  `json:"name"`
	Type  *string `json:"type,omitempty"`
	Use   *string `json:"use,omitempty"`
	Value *string `json:"value,omitempty"`

	// Kind, BasedOn and Deprecated come from the meta.attribute annotation.
	Kind       *string `json:"kind,omitempty"`
	BasedOn    *string `json:"basedOn,omitempty"`
	Deprecated bool    `json:"deprecated"`

	// SimpleBaseType and SimpleEnumeration come from simpleType/restriction.
	// SimpleEnumeration is nil when no restriction is declared and non-nil,
	// possibly empty, when one is.
	SimpleBaseType    *string  `json:"simpleBaseType,omitempty"`
	SimpleEnumeration []string `json:"simpleEnumeration,omitempty"`
}

// IsRequired reports whether the attribute is declared with use="required".
func (a *AttributeDefinition) IsRequired() bool {
	return a.Use != nil && *a.Use == "required"
}

// Equal reports whether a and other are structurally equal.
func (a *AttributeDefinition) Equal(other *AttributeDefinition) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name &&
		equalOptional(a.Type, other.Type) &&
		equalOptional(a.Use, other.Use) &&
		equalOptional(a.Value, other.Value) &&
		equalOptional(a.Kind, other.Kind) &&
		equalOptional(a.BasedOn, other.BasedOn) &&
		a.Deprecated == other.Deprecated &&
		equalOptional(a.SimpleBaseType, other.SimpleBaseType) &&
		(a.SimpleEnumeration == nil) == (other.SimpleEnumeration == nil) &&
		slices.Equal(a.SimpleEnumeration, other.SimpleEnumeration)
}
