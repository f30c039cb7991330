// Package reference resolves element references across schema includes.
package reference

import (
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NotFoundTitle is the title of the notification for an include that cannot be resolved.
	NotFoundTitle = "Schema Not Found"

	// rootKey identifies a root schema that was not loaded from a file.
	rootKey = "\x00root"
)

// Resolver finds element definitions by name in a schema and the schemas it
// includes, depth first in declaration order. Every schema file is searched
// at most once per resolution, so include cycles terminate.
type Resolver struct {
	loader   ports.DefinitionLoader
	notifier ports.Notifier
}

// NewResolver creates a new Resolver.
func NewResolver(loader ports.DefinitionLoader, notifier ports.Notifier) *Resolver {
	return &Resolver{loader: loader, notifier: notifier}
}

// FindRefElement returns the element named ref, searching root first and
// then its includes. Includes that cannot be loaded are reported once and
// skipped.
func (r *Resolver) FindRefElement(root domain.Schema, ref string) (*domain.ElementDefinition, bool) {
	s := r.newSearch()
	el := s.find(root, ref)
	return el, el != nil
}

// FindRefElementAt loads the schema at location and resolves ref from it.
func (r *Resolver) FindRefElementAt(location, ref string) (*domain.ElementDefinition, bool) {
	root, ok := r.loader.LoadExtensionPoint(location)
	if !ok {
		return nil, false
	}
	return r.FindRefElement(root, ref)
}

// ResolveRefs resolves every reference of element against root, in order.
// A missing include is reported once for the whole call.
func (r *Resolver) ResolveRefs(root domain.Schema, element *domain.ElementDefinition) []domain.ResolvedRef {
	if element == nil || len(element.ElementRefs) == 0 {
		return nil
	}

	s := r.newSearch()
	out := make([]domain.ResolvedRef, 0, len(element.ElementRefs))
	for _, ref := range element.ElementRefs {
		clear(s.visited)
		out = append(out, domain.ResolvedRef{Ref: ref, Element: s.find(root, ref.Ref)})
	}
	return out
}

func (r *Resolver) newSearch() *search {
	return &search{
		Resolver: r,
		visited:  make(map[string]struct{}),
		notified: make(map[string]struct{}),
	}
}

type search struct {
	*Resolver
	visited  map[string]struct{}
	notified map[string]struct{}
}

func (s *search) find(schema domain.Schema, ref string) *domain.ElementDefinition {
	if schema.Definition == nil {
		return nil
	}

	key := schema.Path
	if key == "" {
		key = rootKey
	}
	if _, seen := s.visited[key]; seen {
		return nil
	}
	s.visited[key] = struct{}{}

	if el, ok := schema.Definition.Element(ref); ok {
		return el
	}

	for _, location := range schema.Definition.Includes {
		included, ok := s.loader.LoadExtensionPoint(location)
		if !ok {
			s.reportMissing(schema.Definition, location)
			continue
		}
		if el := s.find(included, ref); el != nil {
			return el
		}
	}
	return nil
}

func (s *search) reportMissing(def *domain.ExtensionPointDefinition, location string) {
	if _, done := s.notified[location]; done {
		return
	}
	s.notified[location] = struct{}{}
	s.notifier.Important(NotFoundTitle, "Schema not existed for "+def.Point()+" at location "+location)
}
