// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/exsd/internal/adapters/bundle"
	_ "go.trai.ch/exsd/internal/adapters/config"
	_ "go.trai.ch/exsd/internal/adapters/exsd"
	_ "go.trai.ch/exsd/internal/adapters/fs"
	_ "go.trai.ch/exsd/internal/adapters/index"
	_ "go.trai.ch/exsd/internal/adapters/logger"
	_ "go.trai.ch/exsd/internal/adapters/manifest"
	_ "go.trai.ch/exsd/internal/adapters/metrics"
	_ "go.trai.ch/exsd/internal/adapters/notifier"
	_ "go.trai.ch/exsd/internal/adapters/project"
	_ "go.trai.ch/exsd/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/exsd/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/exsd/internal/app"
	_ "go.trai.ch/exsd/internal/engine/cache"
	_ "go.trai.ch/exsd/internal/engine/locator"
	_ "go.trai.ch/exsd/internal/engine/primer"
	_ "go.trai.ch/exsd/internal/engine/reference"
)
