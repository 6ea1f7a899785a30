// Package ports defines the core interfaces for the application.
package ports

import "github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"

// ConfigLoader defines the interface for reading and writing configuration snapshots.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the snapshot at path, fills defaults and migrates palettes.
	Load(path string) (*domain.Configuration, error)

	// Save writes the snapshot to path as YAML.
	Save(path string, cfg *domain.Configuration) error

	// Discover walks up from cwd and returns the first configuration file found.
	Discover(cwd string) (string, error)
}
