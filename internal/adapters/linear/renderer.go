// Package linear provides a synchronous renderer that prints each resolution as a color table.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/output"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/style"
	"github.com/muesli/termenv"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for pipes and CI logs.
// Resolutions go to stdout, errors to stderr, each prefixed with the source name.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stdout, output.ColorProfileANSI),
		errOut: output.NewWithProfile(stderr, output.ColorProfileANSI),
		done:   make(chan struct{}),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop releases Wait. Every line has already been written as it arrived.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnResolution prints the summary line followed by the color table.
func (r *Renderer) OnResolution(source string, res domain.Resolution) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.out.String(fmt.Sprintf("[%s]", source)).Faint().String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", prefix, res.Summary())
	_ = WriteTable(r.stdout, r.out, res.Colors)
}

// OnError prints the failure. The last table printed stays valid.
func (r *Renderer) OnError(source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := fmt.Sprintf("[%s]", source)
	symbol := r.errOut.String(style.Cross).Foreground(termenv.ANSIRed).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s %v\n", prefix, symbol, err)
}
