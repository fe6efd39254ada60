package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/journal"
)

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recorded task mutations",
		Long: `Show the change journal: one entry per successful add or edit,
in the order they happened.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, cmd)
		},
	}

	return cmd
}

func runLog(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	j, err := journal.Open(opts.JournalFile)
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeJournal, err)
	}
	defer j.Close()

	entries, err := j.List(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeJournal, err)
	}

	if opts.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No history recorded.")
		return nil
	}

	fmt.Fprintln(formatter.Writer, "History:")
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "  %d: %s task %d at %s -> %s\n",
			e.Seq, e.Op, e.TaskID, e.CreatedAt, e.Payload)
	}
	return nil
}
