package commands

import (
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/spf13/cobra"
)

// addOverrideFlags registers the flags that replace parts of the workspace for previews.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Resolve as if the workspace remote were this URL")
	cmd.Flags().String("branch", "", "Resolve as if this branch were checked out")
	cmd.Flags().String("local-path", "", "Resolve as if the workspace were this local folder")
	cmd.Flags().String("theme-kind", "", "Resolve for this theme kind: dark, light, or highContrast")
}

func overridesFrom(cmd *cobra.Command) app.Overrides {
	repo, _ := cmd.Flags().GetString("repo")
	branch, _ := cmd.Flags().GetString("branch")
	localPath, _ := cmd.Flags().GetString("local-path")
	themeKind, _ := cmd.Flags().GetString("theme-kind")

	return app.Overrides{
		RepositoryURL: repo,
		Branch:        branch,
		LocalPath:     localPath,
		ThemeKind:     themeKind,
	}
}

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the theme colors for the current workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Format:    format,
				Overrides: overridesFrom(cmd),
			})
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatTable, "Output format: table, json, or hex")
	addOverrideFlags(cmd)
	return cmd
}

func (c *CLI) newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print which repo and branch rules match the current workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Match(cmd.Context(), app.MatchOptions{Overrides: overridesFrom(cmd)})
		},
	}
	addOverrideFlags(cmd)
	return cmd
}

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report problems in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Validate(cmd.Context())
		},
	}
}
