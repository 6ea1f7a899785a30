package commands

import (
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRandomColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random-color",
		Short: "Print a random accent color for a repo rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			light, _ := cmd.Flags().GetBool("light")
			base, _ := cmd.Flags().GetString("base")

			opts := app.RandomColorOptions{Light: light, Base: base}
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				opts.Seed = &seed
			}
			return c.app.RandomColor(cmd.Context(), opts)
		},
	}
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible color")
	cmd.Flags().Bool("light", false, "Pick a color for a light theme")
	cmd.Flags().String("base", "", "Color the accent must stand apart from")
	return cmd
}
