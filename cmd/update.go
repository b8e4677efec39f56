package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/task"
)

var updateCmd = &cobra.Command{
	Use:     "update ID \"DESCRIPTION\"",
	Aliases: []string{"edit"},
	Short:   "Update a task's description",
	Long:    `Replaces the description of an existing task. Status and creation time are unchanged.`,
	Args:    cobra.ExactArgs(2), //nolint:mnd // ID and description
	RunE:    runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return task.ValidateTaskID(args[0])
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

		t, err := s.UpdateDescription(id, args[1])
		if err != nil {
			return err
		}

		logActivity(cfg, "update", t.ID, t.Description)

		if outputFormat(cfg) == output.FormatJSON {
			return output.JSON(os.Stdout, t)
		}
		output.Messagef(os.Stdout, "Updated task #%d", t.ID)
		return nil
	})
}
