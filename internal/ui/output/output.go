// Package output creates termenv outputs with the color profile rules used across the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/muesli/termenv"
)

// ColorProfile returns the profile for interactive output.
// NO_COLOR forces Ascii; otherwise the terminal is asked.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the profile for CI logs, where terminal detection is unreliable.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output writing to w using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Swatch renders width cells filled with c. Under the Ascii profile it renders
// the cells blank so that plain output stays aligned. True color terminals get
// the exact channels; other profiles get termenv's nearest color.
func Swatch(out *termenv.Output, c domain.Color, width int) string {
	cells := strings.Repeat(" ", width)
	switch out.Profile {
	case termenv.Ascii:
		return cells
	case termenv.TrueColor:
		return out.String(cells).Background(exactRGB(c)).String()
	default:
		return out.String(cells).Background(out.Color(c.Hex())).String()
	}
}

// exactRGB is a termenv.Color that emits the channels as given.
// termenv.RGBColor round-trips through floats and can lose one step per channel.
type exactRGB domain.Color

// Sequence implements termenv.Color.
func (c exactRGB) Sequence(bg bool) string {
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.R, c.G, c.B)
}
