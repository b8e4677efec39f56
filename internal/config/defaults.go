package config

const (
	// FileName is the name of the optional config file within the tracker directory.
	FileName = ".tasktracker.yml"
	// DefaultTasksFile is the default name of the backing tasks file.
	DefaultTasksFile = "tasks.json"
	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)
