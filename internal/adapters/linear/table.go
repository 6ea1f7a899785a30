package linear

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/output"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/style"
	"github.com/muesli/termenv"
)

// WriteTable writes one line per theme key, sorted, as swatch, key and #RRGGBB[AA].
func WriteTable(w io.Writer, out *termenv.Output, colors domain.ThemeColors) error {
	if len(colors) == 0 {
		_, err := fmt.Fprintln(w, out.String("(no colors)").Faint().String())
		return err
	}

	keys := colors.Keys()
	width := 0
	for _, key := range keys {
		width = max(width, len(key))
	}

	var b strings.Builder
	for _, key := range keys {
		c := colors[key]
		fmt.Fprintf(&b, "%s %-*s  %s\n", output.Swatch(out, c, style.SwatchWidth), width, key, c.HexA())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
