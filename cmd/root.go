// Package cmd implements the task-tracker CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/krank-09/task-tracker/internal/clierr"
	"github.com/krank-09/task-tracker/internal/config"
	"github.com/krank-09/task-tracker/internal/filelock"
	"github.com/krank-09/task-tracker/internal/history"
	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/store"
	"github.com/krank-09/task-tracker/internal/taskfile"
)

// version is set at build time via ldflags.
var version = "dev"

// lockFileName guards the load-mutate-save window of mutating commands.
const lockFileName = ".tasks.lock"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "task-tracker",
	Short: "Track tasks from the command line",
	Long: `task-tracker records short textual tasks, tracks a lifecycle status for
each (todo, in-progress, done), and persists them to a tasks.json file.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || termenv.EnvNoColor() {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to the tracker directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	jsonMode := flagJSON || os.Getenv(output.EnvVar) == "json"
	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		if errors.Is(err, taskfile.ErrCorrupt) {
			output.JSONError(os.Stdout, clierr.StoreCorrupt, err.Error(), nil)
			os.Exit(1)
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// resolveDir returns the absolute path to the tracker directory: the
// --dir flag when given, otherwise the nearest ancestor of the working
// directory that already holds a tracker, otherwise the working
// directory itself.
func resolveDir() (string, error) {
	if flagDir != "" {
		return filepath.Abs(flagDir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return config.FindDir(cwd), nil
}

// loadConfig resolves the tracker directory and loads its config.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

// openStore opens the task store backing the given config.
func openStore(cfg *config.Config) (*store.Store, error) {
	return store.Open(cfg.TasksPath())
}

// withStoreLock runs fn with an exclusive lock held on the tracker
// directory, so concurrent invocations cannot interleave their
// load-mutate-save windows and assign duplicate task IDs.
func withStoreLock(cfg *config.Config, fn func() error) error {
	release, err := filelock.Acquire(filepath.Join(cfg.Dir(), lockFileName))
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer release() //nolint:errcheck // best-effort release on exit

	return fn()
}

// outputFormat returns the detected output format from flags, env, and config.
func outputFormat(cfg *config.Config) output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact, cfg.Output)
}

// logActivity appends an entry to the activity log. Errors are silently
// discarded because logging should never fail a command.
func logActivity(cfg *config.Config, action string, taskID int, detail string) {
	history.LogMutation(cfg.Dir(), action, taskID, detail)
}
