// Package commands implements the CLI commands for the exsd tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/exsd/internal/app"
	"go.trai.ch/exsd/internal/build"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

// CLI represents the command line interface for exsd.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	json    bool
	verbose bool
}

// Application represents the application logic interface.
type Application interface {
	SetVerbose(verbose bool)
	ShowProgress(w io.Writer)
	Parse(path string) (*domain.ExtensionPointDefinition, error)
	Load(location string) (domain.Schema, error)
	Resolve(location, ref string) (*domain.ElementDefinition, error)
	ResolveRefs(location, element string) ([]domain.ResolvedRef, error)
	Index(ctx context.Context, force bool) (app.IndexResult, error)
	Prime(ctx context.Context) (domain.PrimeReport, error)
	Watch(ctx context.Context, onChange func([]ports.WatchEvent)) error
	Notifications() []domain.Notification
	Metrics() ([]app.Sample, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "exsd",
		Short:         "Inspect and resolve Eclipse extension-point schemas",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Write machine readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging and priming progress")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.verbose {
			c.app.SetVerbose(true)
			c.app.ShowProgress(cmd.ErrOrStderr())
		}
	}

	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newPrimeCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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
