package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.Mist)

	sourceStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	keyStyle = lipgloss.NewStyle()

	hexStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(style.Green)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
