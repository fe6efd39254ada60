package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/store"
)

// ViewOptions holds flags for the view command.
type ViewOptions struct {
	*RootOptions
	ID int
}

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a single task",
		Long: `View one task by id.

Example:
  taskline view --id 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.ID, "id", "i", 0, "id of the task (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runView(opts *ViewOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st := store.New(opts.TasksFile)
	doc, err := st.Load()
	if err != nil {
		return reportError(formatter, err)
	}

	t, err := doc.Get(opts.ID)
	if err != nil {
		return reportError(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.Success(t)
	}
	fmt.Fprintf(formatter.Writer, "Task ID: %d\n", t.ID)
	fmt.Fprintf(formatter.Writer, "Description: %s\n", t.Description)
	fmt.Fprintf(formatter.Writer, "Estimate: %d hours\n", t.Estimate)
	return nil
}
