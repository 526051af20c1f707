// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/naka-gawa/git-changelog/internal/clierr"
	"github.com/naka-gawa/git-changelog/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// app holds what every command shares for one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	logger *logrus.Logger
	cfg    *config.Configuration
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-changelog",
		Short: "A CLI tool to turn commit history into a changelog.",
		Long: `git-changelog classifies commit subjects written as "type(scope): description"
and renders them as a grouped Markdown or JSON changelog.

Use "generate" to build a Keep a Changelog section from a revision range of a
repository, or "format" to group pipe-delimited history read from standard input.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to an optional YAML or JSON config file")

	rootCmd.AddCommand(a.newGenerateCmd(), a.newFormatCmd())
	return rootCmd
}

// setup builds the logger and loads configuration once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	a.logger = logrus.New()
	a.logger.SetOutput(io.Discard) // Default: discard all logs.
	if verbose {
		a.logger.SetOutput(a.stderr) // If verbose, log to standard error.
		a.logger.SetLevel(logrus.DebugLevel)
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{Path: path, Explicit: cmd.Flags().Changed("config")})
	if err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}
	a.cfg = cfg
	a.logger.Debugf("configuration loaded: %+v", *cfg)
	return nil
}

func (a *app) today() string {
	return a.now().Format(dateLayout)
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, now func() time.Time) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, now: now}
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		clierr.Fprint(stderr, err)
		return clierr.CodeOf(err)
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, time.Now))
}
