package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/config"
	"github.com/roach88/taskline/internal/journal"
	"github.com/roach88/taskline/internal/store"
	"github.com/roach88/taskline/internal/task"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	TasksFile   string // path to the JSON tasks file
	JournalFile string // path to the SQLite change journal
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the taskline CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "taskline",
		Short: "taskline - a file-backed task list",
		Long: `A single-user task list backed by a flat JSON file.

Tasks live in tasks.json in the working directory (override with --file
or a .taskline.yaml config). Every mutation is also recorded in a SQLite
change journal, readable with 'taskline log'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// Unrecognized subcommands fall through to the root command.
			fmt.Fprintf(cmd.OutOrStdout(), "Unknown command: %s\n", args[0])
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown command: %s", args[0]))
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.TasksFile, "file", store.DefaultPath, "path to the tasks file")
	cmd.PersistentFlags().StringVar(&opts.JournalFile, "journal", journal.DefaultPath, "path to the change journal")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewViewCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))

	return cmd
}

// applyConfig fills options from .taskline.yaml for every flag the user
// did not set explicitly. Flags always win over the config file.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeConfig, err)
	}
	if !cmd.Flags().Changed("file") {
		opts.TasksFile = cfg.TasksFile
	}
	if !cmd.Flags().Changed("journal") {
		opts.JournalFile = cfg.JournalFile
	}
	if !cmd.Flags().Changed("format") {
		opts.Format = cfg.Format
	}
	return nil
}

// configureLogging routes diagnostics to stderr, at debug level when
// verbose is set.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the output formatter for a command invocation.
// Verbose logs go to stderr so they never corrupt JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// recordChange appends a journal entry for a successful mutation.
//
// The tasks file has already been saved when this runs, so journal
// failures are reported and swallowed: the journal is advisory and must
// never unwind a committed mutation.
func recordChange(cmd *cobra.Command, opts *RootOptions, op string, t task.Task) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	j, err := journal.Open(opts.JournalFile)
	if err != nil {
		slog.Warn("change journal unavailable", "path", opts.JournalFile, "error", err)
		return
	}
	defer func() {
		if closeErr := j.Close(); closeErr != nil {
			slog.Error("error closing journal", "error", closeErr)
		}
	}()

	entry, err := j.Append(ctx, op, t)
	if err != nil {
		slog.Warn("journal append failed", "op", op, "task_id", t.ID, "error", err)
		return
	}
	slog.Debug("mutation journaled", "op", op, "task_id", t.ID, "seq", entry.Seq, "token", entry.Token)
}
