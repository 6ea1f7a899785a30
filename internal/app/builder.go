package app

import "github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"

// Components holds the objects main needs: the App and the logger used to report its errors.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
