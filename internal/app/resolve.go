package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/linear"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/ui/output"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats for Resolve.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHex   = "hex"
)

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Format    string
	Overrides Overrides
}

// Resolve loads the configuration, resolves it and prints the theme colors.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatTable
	}
	switch format {
	case FormatTable, FormatJSON, FormatHex:
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}
	if err := opts.Overrides.Validate(); err != nil {
		return err
	}

	path, cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}
	opts.Overrides.Apply(cfg)

	res := a.resolver.Resolve(ctx, cfg)
	a.logger.Info(fmt.Sprintf("%s: %s", path, res.Summary()))

	return a.writeColors(format, res.Colors)
}

func (a *App) writeColors(format string, colors domain.ThemeColors) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(colors.Hex(), "", "  ")
		if err != nil {
			return zerr.Wrap(err, "failed to encode colors")
		}
		_, err = fmt.Fprintln(a.stdout, string(data))
		return err
	case FormatHex:
		var b strings.Builder
		for _, key := range colors.Keys() {
			fmt.Fprintf(&b, "%s=%s\n", key, colors[key].HexA())
		}
		_, err := fmt.Fprint(a.stdout, b.String())
		return err
	default:
		return linear.WriteTable(a.stdout, output.New(a.stdout), colors)
	}
}

// MatchOptions configuration for the Match method.
type MatchOptions struct {
	Overrides Overrides
}

// Match prints the indexes of the repo and branch rules matching the workspace.
func (a *App) Match(ctx context.Context, opts MatchOptions) error {
	if err := opts.Overrides.Validate(); err != nil {
		return err
	}

	_, cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}
	opts.Overrides.Apply(cfg)

	data, err := yaml.Marshal(a.resolver.Match(cfg))
	if err != nil {
		return zerr.Wrap(err, "failed to encode matching indexes")
	}
	_, err = a.stdout.Write(data)
	return err
}

// Validate prints every authoring issue in the configuration.
// It returns domain.ErrValidationFailed when at least one issue is found.
func (a *App) Validate(ctx context.Context) error {
	path, cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	issues := a.resolver.Validate(cfg)
	if len(issues) == 0 {
		a.logger.Info(fmt.Sprintf("%s: no issues found", path))
		return nil
	}

	for _, issue := range issues {
		if _, err := fmt.Fprintln(a.stdout, issue.String()); err != nil {
			return err
		}
	}
	a.logger.Warn(fmt.Sprintf("%s: %d issue(s) found", path, len(issues)))
	return domain.ErrValidationFailed
}
