// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockscan/internal/adapters/affected"
	_ "go.trai.ch/lockscan/internal/adapters/config"
	_ "go.trai.ch/lockscan/internal/adapters/detector"
	_ "go.trai.ch/lockscan/internal/adapters/fs"
	_ "go.trai.ch/lockscan/internal/adapters/logger"
	_ "go.trai.ch/lockscan/internal/adapters/report"
	_ "go.trai.ch/lockscan/internal/adapters/safejson"
	// Register app and engine nodes.
	_ "go.trai.ch/lockscan/internal/app"
	_ "go.trai.ch/lockscan/internal/engine/scan"
)
