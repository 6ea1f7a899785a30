// Package style holds the colors and icons shared by the renderers and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Interface colors.
var (
	Accent = lipgloss.Color("#4A90E2")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// SwatchWidth is the number of cells a color swatch occupies.
const SwatchWidth = 4

// Title renders section headings.
var Title = lipgloss.NewStyle().Bold(true).Foreground(Accent)

// Muted renders secondary text such as indexes and alpha values.
var Muted = lipgloss.NewStyle().Foreground(Slate)
