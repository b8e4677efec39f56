package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/clierr"
	"github.com/krank-09/task-tracker/internal/output"
)

var addCmd = &cobra.Command{
	Use:     "add \"DESCRIPTION\"",
	Aliases: []string{"create"},
	Short:   "Add a new task",
	Long:    `Creates a new task with the given description and status "todo".`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	description := args[0]
	if description == "" {
		return clierr.New(clierr.InvalidInput, "task description must not be empty")
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

		t, err := s.Create(description)
		if err != nil {
			return err
		}

		logActivity(cfg, "add", t.ID, t.Description)

		if outputFormat(cfg) == output.FormatJSON {
			return output.JSON(os.Stdout, t)
		}
		output.Messagef(os.Stdout, "Added task #%d: %s", t.ID, t.Description)
		return nil
	})
}
