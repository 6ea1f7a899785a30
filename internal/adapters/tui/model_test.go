package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/tui"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyColors(n int) domain.ThemeColors {
	colors := domain.ThemeColors{}
	for i := range n {
		colors[string(rune('a'+i%26))+string(rune('a'+i/26))] = domain.DefaultColor
	}
	return colors
}

func update(t *testing.T, m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(*tui.Model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_WindowSize(t *testing.T) {
	m := tui.NewModel("grwc.yaml")
	assert.False(t, m.Ready)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.True(t, m.Ready)
	assert.Equal(t, 80, m.Viewport.Width)
	assert.Equal(t, 15, m.Viewport.Height)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 3})
	assert.Equal(t, 100, m.Viewport.Width)
	assert.Equal(t, 1, m.Viewport.Height, "height never drops below one line")
}

func TestModel_Resolution(t *testing.T) {
	m := tui.NewModel("grwc.yaml")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = update(t, m, tui.MsgError{Source: "grwc.yaml", Err: errors.New("boom")})
	require.Error(t, m.Err)

	res := domain.Resolution{
		Indexes: domain.MatchingIndexes{RepoRule: 1, BranchRule: domain.NoMatch},
		Colors:  domain.ThemeColors{domain.KeyActivityBarBackground: domain.DefaultColor},
	}
	m, _ = update(t, m, tui.MsgResolution{Source: "other.yaml", Resolution: res})

	require.NoError(t, m.Err, "a new resolution clears the error")
	assert.Equal(t, "other.yaml", m.Source)
	assert.Equal(t, res, m.Resolution)
	assert.Equal(t, 1, m.Updates)
}

func TestModel_ErrorKeepsResolution(t *testing.T) {
	m := tui.NewModel("grwc.yaml")
	res := domain.Resolution{
		Indexes: domain.MatchingIndexes{RepoRule: 0, BranchRule: domain.NoMatch},
		Colors:  domain.ThemeColors{domain.KeyActivityBarBackground: domain.DefaultColor},
	}
	m, _ = update(t, m, tui.MsgResolution{Source: "grwc.yaml", Resolution: res})
	m, _ = update(t, m, tui.MsgError{Source: "grwc.yaml", Err: errors.New("boom")})

	assert.Equal(t, res, m.Resolution)
	assert.EqualError(t, m.Err, "boom")
}

func TestModel_Keys(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		for _, k := range []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'q'}},
			{Type: tea.KeyCtrlC},
		} {
			m := tui.NewModel("grwc.yaml")
			_, cmd := update(t, m, k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		}
	})

	t.Run("scroll", func(t *testing.T) {
		m := tui.NewModel("grwc.yaml")
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
		m, _ = update(t, m, tui.MsgResolution{Source: "grwc.yaml", Resolution: domain.Resolution{
			Indexes: domain.NoMatches(),
			Colors:  manyColors(40),
		}})

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 2, m.Viewport.YOffset)

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 1, m.Viewport.YOffset)

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
		assert.Equal(t, 0, m.Viewport.YOffset)
	})

	t.Run("other keys ignored", func(t *testing.T) {
		m := tui.NewModel("grwc.yaml")
		_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		assert.Nil(t, cmd)
	})
}
