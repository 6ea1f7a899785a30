package tui

import "github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"

// MsgResolution carries a fresh resolution of the watched configuration.
type MsgResolution struct {
	Source     string
	Resolution domain.Resolution
}

// MsgError reports a failed reload. The previous resolution stays on screen.
type MsgError struct {
	Source string
	Err    error
}
