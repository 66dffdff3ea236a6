// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pin/internal/adapters/config"
	_ "go.trai.ch/pin/internal/adapters/lockfile"
	_ "go.trai.ch/pin/internal/adapters/logger"
	_ "go.trai.ch/pin/internal/adapters/snapshot"
	_ "go.trai.ch/pin/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/pin/internal/app"
)
