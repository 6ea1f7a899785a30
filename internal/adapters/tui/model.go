// Package tui provides the live color preview shown by the watch command.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
)

// headerHeight covers the title and summary lines, footerHeight the status and help lines.
const (
	headerHeight = 3
	footerHeight = 2
)

// Model is the preview state: the latest resolution, the latest error and the scroll position.
type Model struct {
	Source     string
	Resolution domain.Resolution
	Err        error
	Updates    int
	Ready      bool
	Viewport   viewport.Model

	keys keyMap
}

// NewModel creates a preview for the configuration at source.
func NewModel(source string) *Model {
	return &Model{
		Source:     source,
		Resolution: domain.Resolution{Indexes: domain.NoMatches()},
		keys:       defaultKeyMap(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		height := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, height)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = height
		}
		m.Viewport.SetContent(m.table())

	case MsgResolution:
		m.Source = msg.Source
		m.Resolution = msg.Resolution
		m.Err = nil
		m.Updates++
		if m.Ready {
			m.Viewport.SetContent(m.table())
		}

	case MsgError:
		m.Source = msg.Source
		m.Err = msg.Err
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Top):
		m.Viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}
