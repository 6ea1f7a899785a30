package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
)

// DefaultColorHex is the color substituted for empty or unparsable color input.
const DefaultColorHex = "#4A90E2"

// Color is a resolved color with 8-bit channels and an alpha in [0,1].
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

var (
	// Black is opaque black.
	Black = Color{A: 1}
	// White is opaque white.
	White = Color{R: 255, G: 255, B: 255, A: 1}
	// Transparent is fully transparent black.
	Transparent = Color{}
	// DefaultColor is the parsed form of DefaultColorHex.
	DefaultColor = Color{R: 0x4A, G: 0x90, B: 0xE2, A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseColor parses #RGB, #RGBA, #RRGGBB, #RRGGBBAA, rgb(), rgba() and CSS named colors.
func ParseColor(input string) (Color, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Color{}, zerr.With(ErrInvalidColor, "input", input)
	}

	var (
		c  Color
		ok bool
	)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, ok = parseHex(s[1:])
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		c, ok = parseRGBFunc(lower)
	default:
		c, ok = namedColors[lower]
	}
	if !ok {
		return Color{}, zerr.With(ErrInvalidColor, "input", input)
	}
	return c, nil
}

// ParseColorOrDefault parses input and falls back to DefaultColor when it is empty or invalid.
func ParseColorOrDefault(input string) Color {
	c, err := ParseColor(input)
	if err != nil {
		return DefaultColor
	}
	return c
}

// IsValidColor reports whether input parses as a color.
func IsValidColor(input string) bool {
	_, err := ParseColor(input)
	return err == nil
}

func parseHex(digits string) (Color, bool) {
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, false
		}
	}

	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		return parseHex(expanded.String())
	case 6, 8:
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return Color{}, false
		}
		if len(digits) == 6 {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
		}
		return Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: float64(uint8(v)) / 255,
		}, true
	default:
		return Color{}, false
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parseRGBFunc parses rgb(r,g,b) and rgba(r,g,b,a). Both accept an optional alpha.
func parseRGBFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, ok := parseChannel(strings.TrimSpace(parts[i]))
		if !ok {
			return Color{}, false
		}
		channels[i] = v
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, ok := parseAlpha(strings.TrimSpace(parts[3]))
		if !ok {
			return Color{}, false
		}
		alpha = a
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

func parseChannel(s string) (uint8, bool) {
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 255.0 / 100.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v *= scale
	if v < 0 || v > 255 {
		return 0, false
	}
	return uint8(math.Round(v)), true
}

func parseAlpha(s string) (float64, bool) {
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 0.01
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v *= scale
	if v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}

// Hex renders the color as #RRGGBB, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexA renders #RRGGBB for opaque colors and #RRGGBBAA otherwise.
func (c Color) HexA() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, uint8(math.Round(clamp01(c.A)*255)))
}

// RGBA renders the color as rgba(r,g,b,a).
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.HexA()
}

// Luminance returns the perceptual brightness (0.299r + 0.587g + 0.114b)/255.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// IsDark reports whether the color reads as a dark background.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.5
}

// ContrastingText returns black for light colors and white for dark ones.
func (c Color) ContrastingText() Color {
	if c.Luminance() >= 0.5 {
		return Black
	}
	return White
}

// WithOpacity returns a copy with alpha set to opacity clamped to [0,1].
func (c Color) WithOpacity(opacity float64) Color {
	c.A = clamp01(opacity)
	return c
}

// Lighten raises HSL lightness by percent points (0-100). Negative values darken.
func (c Color) Lighten(percent float64) Color {
	if percent == 0 {
		return c
	}
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+percent/100)), c.A)
}

// Darken lowers HSL lightness by percent points (0-100).
func (c Color) Darken(percent float64) Color {
	return c.Lighten(-percent)
}

// RotateHue shifts the hue by degrees, keeping saturation and lightness.
func (c Color) RotateHue(degrees float64) Color {
	h, s, l := c.colorful().Hsl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, s, l), c.A)
}

// InvertLightness mirrors HSL lightness (l -> 1-l), used to derive light variants from dark ones.
func (c Color) InvertLightness() Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, 1-l), c.A)
}

// Hue returns the HSL hue in degrees.
func (c Color) Hue() float64 {
	h, _, _ := c.colorful().Hsl()
	return h
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cf colorful.Color, alpha float64) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 1
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
