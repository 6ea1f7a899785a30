package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("grwc watch")+" "+sourceStyle.Render(m.Source),
		m.Resolution.Summary(),
		"",
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.Viewport.View(), m.status(), m.help())
}

// table renders one swatch row per theme key.
func (m *Model) table() string {
	colors := m.Resolution.Colors
	if len(colors) == 0 {
		return hexStyle.Render("(no colors)")
	}

	keys := colors.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	rows := make([]string, 0, len(keys))
	for _, k := range keys {
		c := colors[k]
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(strings.Repeat(" ", style.SwatchWidth))
		rows = append(rows, fmt.Sprintf("%s %s  %s",
			swatch, keyStyle.Render(fmt.Sprintf("%-*s", width, k)), hexStyle.Render(c.HexA())))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) status() string {
	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("%s %v", style.Cross, m.Err))
	}
	return okStyle.Render(fmt.Sprintf("%s %d keys, %d updates", style.Check, len(m.Resolution.Colors), m.Updates))
}

func (m *Model) help() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
