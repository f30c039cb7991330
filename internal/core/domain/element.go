package domain

import "slices"

// Unbounded is the MaxOccurs value of a reference without an upper limit.
const Unbounded = -1

// ElementDefinition describes one schema <element>.
type ElementDefinition struct {
	Name       string  `json:"name"`
	Type       *string `json:"type,omitempty"`
	Deprecated bool    `json:"deprecated"`
	// ElementRefs lists the element references found inside the complex type.
	ElementRefs []ElementRefDefinition `json:"elementRefs,omitempty"`
	// Attributes lists the attributes declared directly on the complex type.
	Attributes []AttributeDefinition `json:"attributes,omitempty"`
}

// Attribute returns the attribute with the given name.
func (e *ElementDefinition) Attribute(name string) (*AttributeDefinition, bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i], true
		}
	}
	return nil, false
}

// Equal reports whether e and other are structurally equal.
func (e *ElementDefinition) Equal(other *ElementDefinition) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Name == other.Name &&
		equalOptional(e.Type, other.Type) &&
		e.Deprecated == other.Deprecated &&
		slices.Equal(e.ElementRefs, other.ElementRefs) &&
		slices.EqualFunc(e.Attributes, other.Attributes, func(a, b AttributeDefinition) bool {
			return a.Equal(&b)
		})
}

// ElementRefDefinition is a reference from a complex type to a named element.
type ElementRefDefinition struct {
	Ref       string `json:"ref"`
	MinOccurs int32  `json:"minOccurs"`
	MaxOccurs int32  `json:"maxOccurs"`
}

// IsUnbounded reports whether the reference may occur any number of times.
func (r ElementRefDefinition) IsUnbounded() bool {
	return r.MaxOccurs == Unbounded
}
