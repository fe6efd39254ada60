package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/store"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List all tasks in insertion order.

An empty list is not an error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st := store.New(opts.TasksFile)
	doc, err := st.Load()
	if err != nil {
		return reportError(formatter, err)
	}

	tasks := doc.List()
	if opts.Format == "json" {
		return formatter.Success(tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(formatter.Writer, "No tasks found.")
		return nil
	}

	fmt.Fprintln(formatter.Writer, "Tasks:")
	for _, t := range tasks {
		fmt.Fprintf(formatter.Writer, "  ID: %d, Description: %s, Estimate: %d hours\n",
			t.ID, t.Description, t.Estimate)
	}
	return nil
}
