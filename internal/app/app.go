// Package app implements the application layer for grwc.
package app

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/config"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/telemetry"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/watcher"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.ThemeResolver
	logger       ports.Logger
	watcher      ports.Watcher
	tracer       ports.Tracer

	configPath string
	stdout     io.Writer
	stderr     io.Writer
	getwd      func() (string, error)
	shutdown   func(context.Context) error

	teaOptions []tea.ProgramOption
	debounce   time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ThemeResolver,
	log ports.Logger,
	w ports.Watcher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		logger:       log,
		watcher:      w,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getwd:        os.Getwd,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects command output and linear renderer errors.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkingDir makes configuration discovery start at dir instead of the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithDebounce changes how long the watch command waits for the file to settle.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	JSONLogs   bool
	Quiet      bool
	Trace      bool
	Stdout     io.Writer
}

// logSettings is implemented by loggers whose output format can change at runtime.
type logSettings interface {
	SetJSON(enabled bool)
	SetQuiet(enabled bool)
}

// Configure applies the global flags. It is called once before any command runs.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath
	if opts.Stdout != nil {
		a.stdout = opts.Stdout
	}
	if ls, ok := a.logger.(logSettings); ok {
		ls.SetJSON(opts.JSONLogs)
		ls.SetQuiet(opts.Quiet)
	}
	if opts.Trace && a.shutdown == nil {
		a.shutdown = telemetry.Setup(a.logger)
	}
}

// Shutdown flushes pending spans when tracing is enabled.
func (a *App) Shutdown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil
	return err
}

// resolveConfigPath picks the configuration file: --config, then $GRWC_CONFIG, then discovery.
func (a *App) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	if env := os.Getenv(config.EnvConfigPath); env != "" {
		return env, nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get current working directory")
	}
	return a.configLoader.Discover(cwd)
}

// load reads the configuration inside a "load" span.
func (a *App) load(ctx context.Context, path string) (*domain.Configuration, error) {
	if a.tracer != nil {
		var span ports.Span
		_, span = a.tracer.Start(ctx, "load", ports.WithAttribute("path", path))
		defer span.End()

		cfg, err := a.configLoader.Load(path)
		if err != nil {
			span.RecordError(err)
		}
		return cfg, err
	}
	return a.configLoader.Load(path)
}

// loadConfig resolves the configuration path and loads it.
func (a *App) loadConfig(ctx context.Context) (string, *domain.Configuration, error) {
	path, err := a.resolveConfigPath()
	if err != nil {
		return "", nil, err
	}
	cfg, err := a.load(ctx, path)
	if err != nil {
		return "", nil, err
	}
	return path, cfg, nil
}

// Overrides replace parts of the snapshot's workspace for previews.
type Overrides struct {
	RepositoryURL string
	Branch        string
	LocalPath     string
	ThemeKind     string
}

// Validate checks the overrides before any file is read.
func (o Overrides) Validate() error {
	if o.ThemeKind != "" && !domain.ThemeKind(o.ThemeKind).Valid() {
		return zerr.With(domain.ErrInvalidThemeKind, "kind", o.ThemeKind)
	}
	return nil
}

// Apply writes the overrides into cfg.
func (o Overrides) Apply(cfg *domain.Configuration) {
	ws := &cfg.WorkspaceInfo
	if o.RepositoryURL != "" {
		ws.RepositoryURL = o.RepositoryURL
		ws.IsGitRepo = true
		ws.HasWorkspace = true
	}
	if o.Branch != "" {
		ws.BranchName = o.Branch
	}
	if o.LocalPath != "" {
		ws.IsLocalFolder = true
		ws.WorkspacePath = o.LocalPath
		ws.HasWorkspace = true
	}
	if o.ThemeKind != "" {
		cfg.OtherSettings.ThemeKind = domain.ThemeKind(o.ThemeKind)
	}
}
