// Package config handles the optional tracker configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const fileMode = 0o600

// ErrInvalid marks a config file with unusable content.
var ErrInvalid = errors.New("invalid config")

// Config represents the tracker configuration. Every field is optional;
// a missing config file means all defaults. The next task ID is not
// stored here; it is derived from the tasks file at load time.
type Config struct {
	Version   int    `yaml:"version"`
	TasksFile string `yaml:"tasks_file,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Color     *bool  `yaml:"color,omitempty"`

	// dir is the absolute path to the tracker directory (not serialized).
	dir string `yaml:"-"`
}

// Default returns a Config with default values rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Version:   CurrentVersion,
		TasksFile: DefaultTasksFile,
		dir:       dir,
	}
}

// Dir returns the absolute path to the tracker directory.
func (c *Config) Dir() string { return c.dir }

// TasksPath returns the absolute path to the tasks file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.dir, c.TasksFile)
}

// Path returns the absolute path to the config file.
func (c *Config) Path() string {
	return filepath.Join(c.dir, FileName)
}

// ColorEnabled reports whether styled output is enabled. Unset means yes;
// terminal-level overrides (NO_COLOR, --no-color) are handled by the CLI.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.TasksFile == "" {
		return fmt.Errorf("%w: tasks_file is required", ErrInvalid)
	}
	if strings.ContainsRune(c.TasksFile, os.PathSeparator) {
		return fmt.Errorf("%w: tasks_file must be a bare file name, got %q", ErrInvalid, c.TasksFile)
	}
	switch c.Output {
	case "", "json", "table", "compact":
	default:
		return fmt.Errorf("%w: output must be json, table, or compact, got %q", ErrInvalid, c.Output)
	}
	return nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.Path(), data, fileMode)
}

// Load reads and validates the config from the given tracker directory.
// A missing config file is not an error and yields the defaults.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(absDir, FileName)) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return Default(absDir), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default(absDir)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindDir walks upward from startDir looking for a directory containing
// either a config file or a tasks file. Returns startDir itself when
// nothing is found, so a fresh directory works without setup.
func FindDir(startDir string) string {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return startDir
	}

	dir := absStart
	for {
		for _, name := range []string{FileName, DefaultTasksFile} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return absStart
		}
		dir = parent
	}
}
