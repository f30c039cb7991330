// Package config provides the configuration loader for exsd.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the configuration for cwd and resolves it. Without a
// configuration file the defaults describe a single module rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "cwd", cwd)
	}

	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults for " + cwd)
		return resolve(&Exsdfile{}, cwd, "")
	}

	var file Exsdfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return resolve(&file, filepath.Dir(configPath), configPath)
}

// findConfiguration returns the configuration named by the environment, or
// the nearest exsd.yaml in cwd or one of its parents.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		return filepath.Clean(explicit), true
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func resolve(file *Exsdfile, root, source string) (*domain.Config, error) {
	cfg := &domain.Config{
		Project:          file.Project,
		Root:             filepath.Clean(root),
		Source:           source,
		IndexPath:        resolvePath(root, file.Index.Path),
		CacheSize:        domain.DefaultCacheSize,
		PrimeParallelism: file.Prime.Parallelism,
		LogLevel:         strings.ToLower(file.Log.Level),
	}

	if cfg.Project == "" {
		cfg.Project = filepath.Base(cfg.Root)
	}
	if file.Index.Path == "" {
		cfg.IndexPath = filepath.Join(cfg.Root, filepath.FromSlash(domain.DefaultIndexPath))
	}
	if file.Cache.Size != nil {
		if *file.Cache.Size < 0 {
			return nil, zerr.With(domain.ErrInvalidConfig, "cache.size", *file.Cache.Size)
		}
		cfg.CacheSize = *file.Cache.Size
	}
	if cfg.PrimeParallelism < 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "prime.parallelism", cfg.PrimeParallelism)
	}
	if cfg.PrimeParallelism == 0 {
		cfg.PrimeParallelism = runtime.NumCPU()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, zerr.With(domain.ErrInvalidConfig, "log.level", file.Log.Level)
	}

	for _, target := range file.Target {
		cfg.Targets = append(cfg.Targets, resolvePath(root, target))
	}

	modules, err := resolveModules(file.Modules, cfg.Root)
	if err != nil {
		return nil, err
	}
	cfg.Modules = modules

	return cfg, nil
}

func resolveModules(dtos []ModuleDTO, root string) ([]domain.ModuleConfig, error) {
	if len(dtos) == 0 {
		dtos = []ModuleDTO{{}}
	}

	seen := make(map[string]bool, len(dtos))
	modules := make([]domain.ModuleConfig, 0, len(dtos))
	for _, dto := range dtos {
		moduleRoot := resolvePath(root, dto.Root)
		name := dto.Name
		if name == "" {
			name = filepath.Base(moduleRoot)
		}
		if seen[name] {
			return nil, zerr.With(domain.ErrInvalidConfig, "duplicate_module", name)
		}
		seen[name] = true

		module := domain.ModuleConfig{Name: name, Root: moduleRoot}
		for _, contentRoot := range dto.ContentRoots {
			module.ContentRoots = append(module.ContentRoots, resolvePath(moduleRoot, contentRoot))
		}
		if len(module.ContentRoots) == 0 {
			module.ContentRoots = []string{moduleRoot}
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// resolvePath makes configured relative to base. An empty value yields base.
func resolvePath(base, configured string) string {
	if configured == "" {
		return filepath.Clean(base)
	}
	configured = filepath.FromSlash(configured)
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or set explicitly by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if parseErr := decoder.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
