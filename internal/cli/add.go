package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/journal"
	"github.com/roach88/taskline/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Description string
	Estimate    int
	ID          int
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a task to the list.

The task id is assigned automatically from the document's counter.

Example:
  taskline add --description "write spec" --estimate 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "description of the task")
	cmd.Flags().IntVarP(&opts.Estimate, "estimate", "e", 0, "estimate for the task in hours")
	// Accepted for CLI compatibility but ignored: ids are always
	// auto-assigned from the document counter.
	cmd.Flags().IntVarP(&opts.ID, "id", "i", 0, "ignored; ids are always auto-assigned")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st := store.New(opts.TasksFile)
	doc, err := st.Load()
	if err != nil {
		return reportError(formatter, err)
	}

	created, err := doc.Add(opts.Description, opts.Estimate)
	if err != nil {
		return reportError(formatter, err)
	}

	if err := st.Save(doc); err != nil {
		return reportError(formatter, err)
	}
	recordChange(cmd, opts.RootOptions, journal.OpAdd, created)

	if opts.Format == "json" {
		return formatter.Success(created)
	}
	fmt.Fprintf(formatter.Writer, "Task '%s' added with ID %d and estimate %d hours.\n",
		created.Description, created.ID, created.Estimate)
	return nil
}
