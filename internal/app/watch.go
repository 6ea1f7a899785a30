package app

import (
	"context"
	"errors"
	"maps"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/detector"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/linear"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/tui"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/watcher"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	OutputMode string
	Overrides  Overrides
}

// Watch resolves the configuration and re-resolves it every time the file settles after a change.
// It runs until ctx is done or the user quits the preview.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if err := opts.Overrides.Validate(); err != nil {
		return err
	}
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := a.newRenderer(ctx, opts.OutputMode, filepath.Base(path))
	g, gctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		// Quitting the preview ends the watch.
		defer cancel()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		err := renderer.Wait()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return err
	})

	// Watch Routine
	g.Go(func() error {
		defer func() { _ = renderer.Stop() }()
		return a.watchLoop(gctx, path, opts.Overrides, renderer)
	})

	return g.Wait()
}

func (a *App) newRenderer(ctx context.Context, mode, source string) ports.Renderer {
	if detector.ResolveMode(detector.DetectEnvironment(), mode) == detector.ModeTUI {
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
		return tui.NewRenderer(tui.NewModel(source), optsTea...)
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

func (a *App) watchLoop(ctx context.Context, path string, overrides Overrides, renderer ports.Renderer) error {
	source := filepath.Base(path)
	var last *domain.Resolution

	refresh := func() {
		cfg, err := a.load(ctx, path)
		if err != nil {
			renderer.OnError(source, err)
			return
		}
		overrides.Apply(cfg)

		res := a.resolver.Resolve(ctx, cfg)
		if last != nil && sameResolution(*last, res) {
			return
		}
		last = &res
		renderer.OnResolution(source, res)
	}
	refresh()

	if err := a.watcher.Start(ctx, path); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	reload := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(ports.WatchEvent) {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reload:
			refresh()
		}
	}
}

func sameResolution(a, b domain.Resolution) bool {
	return a.Indexes == b.Indexes && a.Profile == b.Profile && maps.Equal(a.Colors, b.Colors)
}
