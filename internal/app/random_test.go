package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_RandomColor(t *testing.T) {
	seed := uint64(42)

	run := func(t *testing.T, opts app.RandomColorOptions) domain.Color {
		t.Helper()
		f := newFixture(t)
		require.NoError(t, f.app.RandomColor(context.Background(), opts))
		c, err := domain.ParseColor(strings.TrimSpace(f.stdout.String()))
		require.NoError(t, err)
		return c
	}

	t.Run("seeded is reproducible", func(t *testing.T) {
		first := run(t, app.RandomColorOptions{Seed: &seed})
		second := run(t, app.RandomColorOptions{Seed: &seed})
		assert.Equal(t, first, second)
	})

	t.Run("dark theme accent is dark", func(t *testing.T) {
		assert.True(t, run(t, app.RandomColorOptions{Seed: &seed}).IsDark())
	})

	t.Run("light theme differs", func(t *testing.T) {
		dark := run(t, app.RandomColorOptions{Seed: &seed})
		light := run(t, app.RandomColorOptions{Seed: &seed, Light: true})
		assert.NotEqual(t, dark, light)
	})

	t.Run("invalid base", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.RandomColor(context.Background(), app.RandomColorOptions{Base: "nope"})
		require.ErrorContains(t, err, domain.ErrInvalidColor.Error())
	})
}
