// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lithos/internal/adapters/config"
	_ "go.trai.ch/lithos/internal/adapters/fs"
	_ "go.trai.ch/lithos/internal/adapters/graphql"
	_ "go.trai.ch/lithos/internal/adapters/logger"
	_ "go.trai.ch/lithos/internal/adapters/reporter"
	_ "go.trai.ch/lithos/internal/adapters/state"
	_ "go.trai.ch/lithos/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/lithos/internal/app"
)
