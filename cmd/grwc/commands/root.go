// Package commands implements the CLI commands for grwc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for grwc.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Resolve(ctx context.Context, opts app.ResolveOptions) error
	Match(ctx context.Context, opts app.MatchOptions) error
	Validate(ctx context.Context) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	CreateProfile(ctx context.Context, name string) error
	RenameProfile(ctx context.Context, from, to string) error
	DuplicateProfile(ctx context.Context, name string) error
	DeleteProfile(ctx context.Context, name string) error
	MapProfile(ctx context.Context, opts app.MapOptions) error
	MoveRule(ctx context.Context, opts app.MoveOptions) error
	AddRule(ctx context.Context, opts app.AddRuleOptions) error
	RandomColor(ctx context.Context, opts app.RandomColorOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "grwc",
		Short:         "Color editor windows by git repository and branch",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to the configuration file (default: discovered from the working directory)")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.BoolP("quiet", "q", false, "Only log warnings and errors")
	flags.Bool("trace", false, "Export spans to stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		quiet, _ := cmd.Flags().GetBool("quiet")
		trace, _ := cmd.Flags().GetBool("trace")

		c.app.Configure(app.GlobalOptions{
			ConfigPath: configPath,
			JSONLogs:   jsonLogs,
			Quiet:      quiet,
			Trace:      trace,
			Stdout:     cmd.OutOrStdout(),
		})
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newMatchCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newProfileCmd())
	rootCmd.AddCommand(c.newRuleCmd())
	rootCmd.AddCommand(c.newRandomColorCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
