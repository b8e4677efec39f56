package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/krank-09/task-tracker/internal/clierr"
	"github.com/krank-09/task-tracker/internal/config"
	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/store"
	"github.com/krank-09/task-tracker/internal/task"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Soft-deletes a task: it disappears from every listing and from the tasks
file, and its ID is never reused. Prompts for confirmation in interactive mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return task.ValidateTaskID(args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	// The prompt runs before the store lock is taken; an unanswered
	// prompt must not block other invocations. Delete looks the ID up
	// again inside the critical section.
	if !yes {
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		t, err := s.Find(id)
		if err != nil {
			return err
		}

		confirmed, err := confirmDelete(t)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, "Canceled.")
			return nil
		}
	}

	return withStoreLock(cfg, func() error {
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		return deleteAndReport(cfg, s, id)
	})
}

// confirmDelete prompts on a TTY; in non-interactive mode it refuses
// rather than guessing.
func confirmDelete(t *task.Task) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, clierr.New(clierr.ConfirmationReq,
			"cannot prompt for confirmation (not a terminal); use --yes")
	}

	fmt.Fprintf(os.Stderr, "Delete task #%d %q? [y/N] ", t.ID, t.Description)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

func deleteAndReport(cfg *config.Config, s *store.Store, id int) error {
	t, err := s.Delete(id)
	if err != nil {
		return err
	}

	logActivity(cfg, "delete", t.ID, t.Description)

	if outputFormat(cfg) == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status":      "deleted",
			"id":          t.ID,
			"description": t.Description,
		})
	}
	output.Messagef(os.Stdout, "Deleted task #%d: %s", t.ID, t.Description)
	return nil
}
