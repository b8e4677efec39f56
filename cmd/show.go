package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show task details",
	Long:  `Displays full details of a single task including its complete description.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("render", false, "render the description as markdown")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return task.ValidateTaskID(args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	t, err := s.Find(id)
	if err != nil {
		return err
	}

	format := outputFormat(cfg)
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}
	if format == output.FormatCompact {
		output.TaskDetailCompact(os.Stdout, t)
		return nil
	}

	description := t.Description
	if render, _ := cmd.Flags().GetBool("render"); render {
		description = output.RenderMarkdown(description)
	}
	output.TaskDetail(os.Stdout, t, description)
	return nil
}
