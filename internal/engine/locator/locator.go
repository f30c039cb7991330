// Package locator maps schema:// locations to schema files.
package locator

import (
	"strings"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

var _ ports.SchemaLocator = (*Resolver)(nil)

// Resolver implements ports.SchemaLocator. A location names a bundle and a
// path inside it. The bundle root is tried first, then its source bundle.
// Bundles missing from the target platform are looked up among the project
// modules by symbolic name, trying each content root in order.
type Resolver struct {
	bundles ports.BundleManager
	modules ports.ModuleProvider
	fs      ports.FileSystem
}

// NewResolver creates a new Resolver.
func NewResolver(bundles ports.BundleManager, modules ports.ModuleProvider, fs ports.FileSystem) *Resolver {
	return &Resolver{bundles: bundles, modules: modules, fs: fs}
}

// Resolve returns the canonical path of the first existing file for location.
// Malformed locations are not found.
func (r *Resolver) Resolve(location string) (string, bool) {
	loc, err := domain.ParseLocator(location)
	if err != nil {
		return "", false
	}
	rel := strings.TrimLeft(loc.Path, "/")

	if bundle, ok := r.bundles.Bundle(loc.Bundle); ok {
		if path, ok := r.fs.Lookup(bundle.Root, rel); ok {
			return path, true
		}
		if bundle.Source != nil {
			if path, ok := r.fs.Lookup(bundle.Source.Root, rel); ok {
				return path, true
			}
		}
		// A known bundle is authoritative; project modules are not searched.
		return "", false
	}

	for _, module := range r.modules.Modules() {
		if module.SymbolicName != loc.Bundle {
			continue
		}
		for _, root := range module.ContentRoots {
			if path, ok := r.fs.Lookup(root, rel); ok {
				return path, true
			}
		}
	}
	return "", false
}
