// Package commands implements the CLI commands for lockscan.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lockscan/internal/app"
	"go.trai.ch/lockscan/internal/build"
	"go.trai.ch/lockscan/internal/core/domain"
)

// CLI represents the command line interface for lockscan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, w io.Writer, path string, opts app.Options) error
	List(ctx context.Context, w io.Writer, opts app.Options) error
	Lookup(ctx context.Context, w io.Writer, name string, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "lockscan <path>",
		Short: "Check a package-lock.json for known compromised packages",
		Long: `lockscan reads an npm package-lock.json (or the one inside a directory) and reports
every installed package that appears in the list of known compromised releases.

Exit codes:
  0  no affected packages found
  1  affected packages found or an error occurred`,
		Example: `  lockscan ./package-lock.json
  lockscan ./web/
  lockscan --list extra.txt --format json .`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			path, err := domain.ValidateArguments(args)
			if err != nil {
				return err
			}

			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}

			return c.app.Check(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
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
	flags.String("config", "", "Configuration file (default: nearest "+domain.ConfigFileName+")")
	flags.StringArray("list", nil, "Extra affected list file, one name@version per line (repeatable)")
	flags.Bool("no-embedded", false, "Do not load the built-in affected list")
	flags.Bool("strict", true, "Validate affected list entries while loading")
	flags.String("format", "", "Output format: auto, text or json (default from config, else auto)")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newLookupCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// optionsFrom collects the persistent flags. Only flags given on the command line override
// the configuration file.
func optionsFrom(cmd *cobra.Command) (app.Options, error) {
	flags := cmd.Flags()

	var opts app.Options
	var err error

	if opts.ConfigPath, err = flags.GetString("config"); err != nil {
		return opts, err
	}
	if opts.Lists, err = flags.GetStringArray("list"); err != nil {
		return opts, err
	}
	if opts.NoEmbedded, err = flags.GetBool("no-embedded"); err != nil {
		return opts, err
	}
	if opts.Format, err = flags.GetString("format"); err != nil {
		return opts, err
	}
	if flags.Changed("strict") {
		strict, err := flags.GetBool("strict")
		if err != nil {
			return opts, err
		}
		opts.Strict = &strict
	}

	return opts, nil
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
