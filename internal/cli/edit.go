package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/taskline/internal/journal"
	"github.com/roach88/taskline/internal/store"
	"github.com/roach88/taskline/internal/task"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	ID          int
	Description string
	Estimate    int
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a task",
		Long: `Edit a task's description and/or estimate.

Only the flags you supply are changed; everything else keeps its prior
value.

Example:
  taskline edit --id 1 --estimate 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.ID, "id", "i", 0, "id of the task (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "new description")
	cmd.Flags().IntVarP(&opts.Estimate, "estimate", "e", 0, "new estimate in hours")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runEdit(opts *EditOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st := store.New(opts.TasksFile)
	doc, err := st.Load()
	if err != nil {
		return reportError(formatter, err)
	}

	// Partial update: only flags the user actually set are applied.
	var up task.Update
	if cmd.Flags().Changed("description") {
		up.Description = &opts.Description
	}
	if cmd.Flags().Changed("estimate") {
		up.Estimate = &opts.Estimate
	}

	updated, err := doc.Edit(opts.ID, up)
	if err != nil {
		return reportError(formatter, err)
	}

	if err := st.Save(doc); err != nil {
		return reportError(formatter, err)
	}
	recordChange(cmd, opts.RootOptions, journal.OpEdit, updated)

	if opts.Format == "json" {
		return formatter.Success(updated)
	}
	fmt.Fprintf(formatter.Writer, "Task %d updated.\n", updated.ID)
	return nil
}
