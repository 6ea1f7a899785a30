package commands

import (
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage advanced profiles",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a profile from the default template",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.CreateProfile(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "rename <from> <to>",
			Short: "Rename a profile and every rule that uses it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.RenameProfile(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "duplicate <name>",
			Short: "Copy a profile and print the name of the copy",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.DuplicateProfile(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a profile no rule uses",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.DeleteProfile(cmd.Context(), args[0])
			},
		},
		c.newProfileMapCmd(),
	)
	return cmd
}

func (c *CLI) newProfileMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <profile> <theme-key>",
		Short: "Point a theme key of a profile at a palette slot or a fixed color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, _ := cmd.Flags().GetString("slot")
			fixed, _ := cmd.Flags().GetString("fixed")
			syncFgBg, _ := cmd.Flags().GetBool("sync-fg-bg")
			syncActive, _ := cmd.Flags().GetBool("sync-active-inactive")

			opts := app.MapOptions{
				Profile:            args[0],
				Key:                args[1],
				Slot:               slot,
				FixedColor:         fixed,
				SyncFgBg:           syncFgBg,
				SyncActiveInactive: syncActive,
			}
			if cmd.Flags().Changed("opacity") {
				opacity, _ := cmd.Flags().GetFloat64("opacity")
				opts.Opacity = &opacity
			}
			return c.app.MapProfile(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("slot", "s", "none", "Palette slot, or none to leave the key uncolored")
	cmd.Flags().String("fixed", "", "Fixed color; takes precedence over --slot")
	cmd.Flags().Float64("opacity", 1, "Opacity between 0 and 1")
	cmd.Flags().Bool("sync-fg-bg", true, "Point the foreground/background counterpart at the matching slot")
	cmd.Flags().Bool("sync-active-inactive", false, "Point the active/inactive counterpart at the matching slot")
	return cmd
}
