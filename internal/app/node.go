package app

import (
	"context"
	"log/slog"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/bundle"             //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/exsd"               //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/index"              //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/notifier"           //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/project"            //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/exsd/internal/engine/cache"
	"go.trai.ch/exsd/internal/engine/primer"
	"go.trai.ch/exsd/internal/engine/reference"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Close releases the resources held by the components.
func (c *Components) Close() error {
	return c.App.Close()
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			exsd.NodeID,
			fs.FileSystemNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			index.StoreNodeID,
			cache.NodeID,
			reference.NodeID,
			primer.NodeID,
			watcher.NodeID,
			project.NodeID,
			bundle.NodeID,
			notifier.ConcreteNodeID,
			metrics.RecorderNodeID,
			progrock.NodeID,
			logger.ConcreteNodeID,
			config.ConfigNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop,funlen // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	parser, err := graft.Dep[ports.SchemaParser](ctx)
	if err != nil {
		return nil, err
	}
	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[*index.Store](ctx)
	if err != nil {
		return nil, err
	}
	c, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}
	refs, err := graft.Dep[*reference.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	p, err := graft.Dep[*primer.Primer](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	modules, err := graft.Dep[ports.ModuleProvider](ctx)
	if err != nil {
		return nil, err
	}
	bundles, err := graft.Dep[ports.BundleManager](ctx)
	if err != nil {
		return nil, err
	}
	n, err := graft.Dep[*notifier.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log.SetLevel(parseLevel(cfg.LogLevel))

	return New(Options{
		Parser:    parser,
		FS:        fsys,
		Walker:    walker,
		Hasher:    hasher,
		Index:     store,
		Cache:     c,
		Refs:      refs,
		Primer:    p,
		Watcher:   w,
		Modules:   modules,
		Bundles:   bundles,
		Notifier:  n,
		Metrics:   recorder,
		Telemetry: telemetry,
		Logger:    log,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}

// parseLevel maps a validated configuration log level to slog.
func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
