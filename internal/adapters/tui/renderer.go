package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the preview Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnResolution forwards a resolution to the TUI.
func (r *Renderer) OnResolution(source string, res domain.Resolution) {
	r.program.Send(MsgResolution{Source: source, Resolution: res})
}

// OnError forwards a reload failure to the TUI.
func (r *Renderer) OnError(source string, err error) {
	r.program.Send(MsgError{Source: source, Err: err})
}
