// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/config"
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/logger"
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/telemetry"
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	_ "github.com/mgfarmer/git-repo-window-colors-sub000/internal/engine/resolver"
)
