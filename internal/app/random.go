package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// RandomColorOptions configuration for the RandomColor method.
type RandomColorOptions struct {
	// Seed makes the result reproducible when set.
	Seed  *uint64
	Light bool
	// Base is the color the accent must differ from. It defaults to domain.DefaultColorHex.
	Base string
}

// RandomColor prints a random accent color suitable for a repo rule.
func (a *App) RandomColor(_ context.Context, opts RandomColorOptions) error {
	base := domain.DefaultColor
	if opts.Base != "" {
		c, err := domain.ParseColor(opts.Base)
		if err != nil {
			return zerr.With(domain.ErrInvalidColor, "value", opts.Base)
		}
		base = c
	}

	var src domain.RandomSource
	if opts.Seed != nil {
		src = rand.New(rand.NewPCG(*opts.Seed, *opts.Seed))
	}

	c := domain.RandomAccentColor(base, !opts.Light, src)
	_, err := fmt.Fprintln(a.stdout, c.Hex())
	return err
}
