// Package commands implements the CLI commands for pin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/adapters/detector"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/build"
)

// CLI represents the command line interface for pin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Write(ctx context.Context, opts app.WriteOptions) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Show(ctx context.Context, configuration string) error
	List(ctx context.Context) error
	SetOutputMode(mode detector.OutputMode)
	SetTrace(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pin",
		Short:         "Record and enforce exact dependency versions per configuration",
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

	rootCmd.PersistentFlags().StringP("output", "o", "auto", "Output mode: auto, color, plain or json")
	rootCmd.PersistentFlags().Bool("trace", false, "Report every locking operation with its duration")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		output, _ := cmd.Flags().GetString("output")
		trace, _ := cmd.Flags().GetBool("trace")
		c.app.SetOutputMode(detector.ResolveMode(detector.ModeAuto, output))
		c.app.SetTrace(trace)
	}

	rootCmd.AddCommand(c.newWriteCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newListCmd())
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
