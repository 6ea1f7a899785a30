package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/cmd/grwc/commands"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockApp records the options of the last call.
type mockApp struct {
	global  app.GlobalOptions
	called  string
	args    []string
	resolve app.ResolveOptions
	match   app.MatchOptions
	watch   app.WatchOptions
	mapOpts app.MapOptions
	move    app.MoveOptions
	addRule app.AddRuleOptions
	random  app.RandomColorOptions
	err     error
}

func (m *mockApp) Configure(opts app.GlobalOptions) { m.global = opts }

func (m *mockApp) Resolve(_ context.Context, opts app.ResolveOptions) error {
	m.called, m.resolve = "resolve", opts
	return m.err
}

func (m *mockApp) Match(_ context.Context, opts app.MatchOptions) error {
	m.called, m.match = "match", opts
	return m.err
}

func (m *mockApp) Validate(_ context.Context) error {
	m.called = "validate"
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.WatchOptions) error {
	m.called, m.watch = "watch", opts
	return m.err
}

func (m *mockApp) CreateProfile(_ context.Context, name string) error {
	m.called, m.args = "create", []string{name}
	return m.err
}

func (m *mockApp) RenameProfile(_ context.Context, from, to string) error {
	m.called, m.args = "rename", []string{from, to}
	return m.err
}

func (m *mockApp) DuplicateProfile(_ context.Context, name string) error {
	m.called, m.args = "duplicate", []string{name}
	return m.err
}

func (m *mockApp) DeleteProfile(_ context.Context, name string) error {
	m.called, m.args = "delete", []string{name}
	return m.err
}

func (m *mockApp) MapProfile(_ context.Context, opts app.MapOptions) error {
	m.called, m.mapOpts = "map", opts
	return m.err
}

func (m *mockApp) MoveRule(_ context.Context, opts app.MoveOptions) error {
	m.called, m.move = "move", opts
	return m.err
}

func (m *mockApp) AddRule(_ context.Context, opts app.AddRuleOptions) error {
	m.called, m.addRule = "add", opts
	return m.err
}

func (m *mockApp) RandomColor(_ context.Context, opts app.RandomColorOptions) error {
	m.called, m.random = "random", opts
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "validate", "-c", "colors.yaml", "--json-logs", "-q", "--trace")
	require.NoError(t, err)

	assert.Equal(t, "validate", m.called)
	assert.Equal(t, "colors.yaml", m.global.ConfigPath)
	assert.True(t, m.global.JSONLogs)
	assert.True(t, m.global.Quiet)
	assert.True(t, m.global.Trace)
	assert.NotNil(t, m.global.Stdout)
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "resolve", "--format", "json",
			"--repo", "https://github.com/acme/widgets", "--branch", "feature/x",
			"--local-path", "/src/widgets", "--theme-kind", "light")
		require.NoError(t, err)

		assert.Equal(t, app.ResolveOptions{
			Format: "json",
			Overrides: app.Overrides{
				RepositoryURL: "https://github.com/acme/widgets",
				Branch:        "feature/x",
				LocalPath:     "/src/widgets",
				ThemeKind:     "light",
			},
		}, m.resolve)
	})

	t.Run("defaults to table", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "resolve")
		require.NoError(t, err)
		assert.Equal(t, app.FormatTable, m.resolve.Format)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "resolve")
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Match(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "match", "--branch", "main")
	require.NoError(t, err)
	assert.Equal(t, "match", m.called)
	assert.Equal(t, "main", m.match.Overrides.Branch)
}

func TestCommands_Watch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"watch"}, want: "auto"},
		{name: "explicit", args: []string{"watch", "-o", "tui"}, want: "tui"},
		{name: "ci wins", args: []string{"watch", "-o", "tui", "--ci"}, want: "linear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.watch.OutputMode)
		})
	}
}

func TestCommands_Profile(t *testing.T) {
	tests := []struct {
		args       []string
		wantCalled string
		wantArgs   []string
	}{
		{args: []string{"profile", "create", "Ocean"}, wantCalled: "create", wantArgs: []string{"Ocean"}},
		{args: []string{"profile", "rename", "Ocean", "Deep"}, wantCalled: "rename", wantArgs: []string{"Ocean", "Deep"}},
		{args: []string{"profile", "duplicate", "Ocean"}, wantCalled: "duplicate", wantArgs: []string{"Ocean"}},
		{args: []string{"profile", "delete", "Ocean"}, wantCalled: "delete", wantArgs: []string{"Ocean"}},
	}

	for _, tt := range tests {
		t.Run(tt.wantCalled, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalled, m.called)
			assert.Equal(t, tt.wantArgs, m.args)
		})
	}

	t.Run("requires a name", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "profile", "create")
		require.Error(t, err)
		assert.Empty(t, m.called)
	})
}

func TestCommands_ProfileMap(t *testing.T) {
	t.Run("opacity unset", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "profile", "map", "Ocean", "statusBar.background", "--slot", "tertiaryBg")
		require.NoError(t, err)

		assert.Equal(t, "Ocean", m.mapOpts.Profile)
		assert.Equal(t, "statusBar.background", m.mapOpts.Key)
		assert.Equal(t, "tertiaryBg", m.mapOpts.Slot)
		assert.Nil(t, m.mapOpts.Opacity)
		assert.True(t, m.mapOpts.SyncFgBg)
		assert.False(t, m.mapOpts.SyncActiveInactive)
	})

	t.Run("fixed color with opacity", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "profile", "map", "Ocean", "statusBar.background",
			"--fixed", "#123456", "--opacity", "0.25", "--sync-fg-bg=false", "--sync-active-inactive")
		require.NoError(t, err)

		assert.Equal(t, "#123456", m.mapOpts.FixedColor)
		require.NotNil(t, m.mapOpts.Opacity)
		assert.InDelta(t, 0.25, *m.mapOpts.Opacity, 1e-9)
		assert.False(t, m.mapOpts.SyncFgBg)
		assert.True(t, m.mapOpts.SyncActiveInactive)
	})
}

func TestCommands_RuleMove(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "rule", "move", "--from", "2", "--to", "0", "--table", "main")
	require.NoError(t, err)
	assert.Equal(t, app.MoveOptions{From: 2, To: 0, Table: "main"}, m.move)

	m = &mockApp{}
	_, err = execute(t, m, "rule", "move", "--from", "2")
	require.Error(t, err)
	assert.Empty(t, m.called)

	t.Run("step", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "rule", "move", "--up", "3")
		require.NoError(t, err)
		assert.Equal(t, app.MoveOptions{From: 3, Up: true}, m.move)

		m = &mockApp{}
		_, err = execute(t, m, "rule", "move", "--down", "0", "--table", "main")
		require.NoError(t, err)
		assert.Equal(t, app.MoveOptions{From: 0, Down: true, Table: "main"}, m.move)
	})

	t.Run("conflicting flags", func(t *testing.T) {
		for _, args := range [][]string{
			{"rule", "move", "--up", "1", "--down", "1"},
			{"rule", "move", "--from", "1", "--to", "0", "--up", "1"},
			{"rule", "move"},
		} {
			m := &mockApp{}
			_, err := execute(t, m, args...)
			require.Error(t, err, args)
			assert.Empty(t, m.called)
		}
	})
}

func TestCommands_RuleAdd(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "rule", "add", "--qualifier", "acme/widgets", "--color", "#228B22")
	require.NoError(t, err)
	assert.Equal(t, "add", m.called)
	assert.Equal(t, app.AddRuleOptions{Qualifier: "acme/widgets", Color: "#228B22"}, m.addRule)

	m = &mockApp{}
	_, err = execute(t, m, "rule", "add", "--qualifier", "acme/widgets")
	require.Error(t, err)
	assert.Empty(t, m.called)
}

func TestCommands_RandomColor(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "random-color")
	require.NoError(t, err)
	assert.Nil(t, m.random.Seed)

	m = &mockApp{}
	_, err = execute(t, m, "random-color", "--seed", "7", "--light", "--base", "#4A90E2")
	require.NoError(t, err)
	require.NotNil(t, m.random.Seed)
	assert.Equal(t, uint64(7), *m.random.Seed)
	assert.True(t, m.random.Light)
	assert.Equal(t, "#4A90E2", m.random.Base)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "grwc version "+build.Version)
}
