// Package cli defines the command-line interface for usaidwat.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/domain"
	"github.com/qepting91/usaidwat/internal/logging"
)

// Options stores global CLI options shared between commands. The Source
// and Provider fields let tests inject fakes; when nil, commands build
// real clients from the environment.
type Options struct {
	LogLevel logging.Level

	Source   domain.CommentSource
	Provider domain.Provider
	Out      io.Writer
}

func (o *Options) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Execute builds the root command and runs it with the provided args.
func Execute(ctx context.Context, args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	opts := &Options{LogLevel: logging.LevelInfo}
	rootCmd := newRootCommand(opts, logger, os.Stderr)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

// newRootCommand constructs the root cobra.Command with global flags and
// subcommands. The injected logger is used as-is unless --log-level is
// set, in which case a logger at that level is rebuilt onto logW.
func newRootCommand(opts *Options, logger *slog.Logger, logW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "usaidwat",
		Short:         "Answers the age-old question, \"Where does a Redditor comment the most?\"",
		Long:          "usaidwat lists, tallies, and summarizes a Redditor's last 100 comments in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flag := cmd.Flag("log-level")
			opts.LogLevel = logging.ParseLevel(flag.Value.String())
			if flag.Changed {
				logger = logging.NewLogger(logW, opts.LogLevel)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newLogCommand(opts),
		newTallyCommand(opts),
		newSummaryCommand(opts),
		newInfoCommand(opts),
		newTimelineCommand(opts),
		newDashboardCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command
// contexts.
type loggerKey struct{}

// loggerFromContext extracts a logger from the context or falls back to
// a default logger.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}

// ExitCode maps an error to the process exit code: 0 for nil, 67 when
// the user does not exist, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case domain.IsKind(err, domain.KindNotFound):
		return 67
	default:
		return 1
	}
}
