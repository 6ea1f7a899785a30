package ports

import (
	"context"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
)

// Renderer is the abstraction for presenting resolved themes.
// The same stream of resolutions can drive either a live TUI or plain logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// Asynchronous renderers (like the TUI) may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop and flush buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnResolution is called with each new resolution of the watched configuration.
	OnResolution(source string, res domain.Resolution)

	// OnError is called when loading or resolving fails. The previous resolution stays on screen.
	OnError(source string, err error)
}
