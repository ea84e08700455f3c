package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// runFunc starts the application; tests substitute it.
type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "roster browses a remote user directory in the terminal",
		Long: `roster fetches the user list once from an HTTP endpoint and lets you
search it by name prefix and inspect a user's details.

Settings are read from ~/.config/roster/config.toml when present.
Flags override the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // run prints the error
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/roster/config.toml)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "users endpoint URL (overrides config)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/roster/prefs.toml)")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file path (overrides config)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error or off")
	flags.StringVar(&opts.LogFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "roster %s (commit %s, built %s)\n", Version, Commit, BuildDate)
}
