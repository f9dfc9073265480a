// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fingerprint/internal/adapters/cas"
	_ "go.trai.ch/fingerprint/internal/adapters/collector"
	_ "go.trai.ch/fingerprint/internal/adapters/config"
	_ "go.trai.ch/fingerprint/internal/adapters/fs"
	_ "go.trai.ch/fingerprint/internal/adapters/locations"
	_ "go.trai.ch/fingerprint/internal/adapters/logger"
	_ "go.trai.ch/fingerprint/internal/adapters/sqlite"
	_ "go.trai.ch/fingerprint/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/fingerprint/internal/app"
	_ "go.trai.ch/fingerprint/internal/engine/router"
)
