package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/task"
)

// The two mark commands are the only way to move a task out of "todo".
// There is no mark-todo; tasks only enter "todo" at creation.
var (
	markInProgressCmd = &cobra.Command{
		Use:   "mark-in-progress ID",
		Short: "Mark a task as in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMark(args[0], task.StatusInProgress)
		},
	}

	markDoneCmd = &cobra.Command{
		Use:   "mark-done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMark(args[0], task.StatusDone)
		},
	}
)

func init() {
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markDoneCmd)
}

func runMark(idArg, status string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return task.ValidateTaskID(idArg)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return withStoreLock(cfg, func() error {
		s, err := openStore(cfg)
		if err != nil {
			return err
		}

		t, err := s.SetStatus(id, status)
		if err != nil {
			return err
		}

		logActivity(cfg, "mark", t.ID, t.Status)

		if outputFormat(cfg) == output.FormatJSON {
			return output.JSON(os.Stdout, t)
		}
		output.Messagef(os.Stdout, "Marked task #%d as %s", t.ID, t.Status)
		return nil
	})
}
