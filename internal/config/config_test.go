package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingConfigYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultTasksFile, cfg.TasksFile)
	assert.Equal(t, filepath.Join(dir, DefaultTasksFile), cfg.TasksPath())
	assert.True(t, cfg.ColorEnabled())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default(dir)
	cfg.TasksFile = "work.json"
	cfg.Output = "compact"
	off := false
	cfg.Color = &off
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "work.json", loaded.TasksFile)
	assert.Equal(t, "compact", loaded.Output)
	assert.False(t, loaded.ColorEnabled())
	assert.Equal(t, filepath.Join(dir, "work.json"), loaded.TasksPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "json output", mutate: func(c *Config) { c.Output = "json" }, ok: true},
		{name: "bad version", mutate: func(c *Config) { c.Version = 99 }},
		{name: "empty tasks file", mutate: func(c *Config) { c.TasksFile = "" }},
		{name: "tasks file with path", mutate: func(c *Config) { c.TasksFile = filepath.Join("sub", "t.json") }},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("version: 42\n"), 0o600))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	// Nothing anywhere: the start directory itself.
	assert.Equal(t, nested, FindDir(nested))

	// A tasks file in an ancestor wins over the start directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultTasksFile), []byte("[]"), 0o600))
	assert.Equal(t, root, FindDir(nested))

	// A config file closer to the start wins over the ancestor.
	require.NoError(t, os.WriteFile(filepath.Join(nested, FileName), []byte("version: 1\n"), 0o600))
	assert.Equal(t, nested, FindDir(nested))
}
