package commands

import (
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage repo and branch rules",
	}

	move := &cobra.Command{
		Use:   "move",
		Short: "Move a rule to another position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.MoveOptions{}
			opts.Table, _ = cmd.Flags().GetString("table")

			flags := cmd.Flags()
			switch {
			case flags.Changed("up"):
				opts.From, _ = flags.GetInt("up")
				opts.Up = true
			case flags.Changed("down"):
				opts.From, _ = flags.GetInt("down")
				opts.Down = true
			default:
				opts.From, _ = flags.GetInt("from")
				opts.To, _ = flags.GetInt("to")
			}
			return c.app.MoveRule(cmd.Context(), opts)
		},
	}
	move.Flags().Int("from", 0, "Current index of the rule")
	move.Flags().Int("to", 0, "New index of the rule")
	move.Flags().Int("up", 0, "Move the rule at this index one position up")
	move.Flags().Int("down", 0, "Move the rule at this index one position down")
	move.Flags().String("table", "", "Move a rule of this shared branch table instead of a repo rule")
	move.MarkFlagsRequiredTogether("from", "to")
	move.MarkFlagsMutuallyExclusive("from", "up", "down")
	move.MarkFlagsOneRequired("from", "up", "down")

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a repo rule ahead of the rule matching this workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			qualifier, _ := cmd.Flags().GetString("qualifier")
			color, _ := cmd.Flags().GetString("color")
			return c.app.AddRule(cmd.Context(), app.AddRuleOptions{Qualifier: qualifier, Color: color})
		},
	}
	add.Flags().String("qualifier", "", "Repo qualifier the rule matches")
	add.Flags().String("color", "", "Color or profile name for matching repositories")
	_ = add.MarkFlagRequired("qualifier")
	_ = add.MarkFlagRequired("color")

	cmd.AddCommand(move, add)
	return cmd
}
