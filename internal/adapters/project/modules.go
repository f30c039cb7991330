// Package project lists the plugin modules of the workspace.
package project

import (
	"slices"
	"sync"

	"go.trai.ch/exsd/internal/adapters/manifest"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

var _ ports.ModuleProvider = (*Modules)(nil)

// Modules implements ports.ModuleProvider from the configured modules. The
// symbolic name of each module is read from its manifest on Reload.
type Modules struct {
	reader *manifest.Reader
	logger ports.Logger
	config []domain.ModuleConfig

	mu      sync.RWMutex
	modules []domain.Module
}

// NewModules creates a provider for the configured modules and loads their manifests.
func NewModules(reader *manifest.Reader, logger ports.Logger, config []domain.ModuleConfig) *Modules {
	m := &Modules{reader: reader, logger: logger, config: config}
	m.Reload()
	return m
}

// Reload re-reads the manifests of all modules.
func (m *Modules) Reload() {
	modules := make([]domain.Module, 0, len(m.config))
	for _, cfg := range m.config {
		module := domain.Module{
			Name:         cfg.Name,
			Root:         cfg.Root,
			ContentRoots: slices.Clone(cfg.ContentRoots),
		}
		mf, ok, err := m.reader.ReadBundle(cfg.Root)
		switch {
		case err != nil:
			m.logger.Error(err)
		case ok:
			module.SymbolicName = mf.SymbolicName
		}
		modules = append(modules, module)
	}

	m.mu.Lock()
	m.modules = modules
	m.mu.Unlock()
}

// Modules returns the modules in configuration order.
func (m *Modules) Modules() []domain.Module {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.modules)
}
