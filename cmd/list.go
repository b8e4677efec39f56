package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/task"
)

var listCmd = &cobra.Command{
	Use:       "list [STATUS]",
	Aliases:   []string{"ls"},
	Short:     "List tasks",
	Long:      `Lists tasks in creation order, optionally restricted to one status (todo, in-progress, done).`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: task.Statuses(),
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, args []string) error {
	filter := ""
	if len(args) == 1 {
		if err := task.ValidateFilterStatus(args[0]); err != nil {
			return err
		}
		filter = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	tasks := s.List(filter)

	format := outputFormat(cfg)
	if format == output.FormatJSON {
		if tasks == nil {
			tasks = []*task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	}
	if format == output.FormatCompact {
		output.TaskCompact(os.Stdout, tasks)
		return nil
	}

	output.TaskTable(os.Stdout, tasks)
	return nil
}
