// Package output handles formatting CLI output as table, JSON, or compact.
package output

import "os"

// EnvVar selects the default output format when no flag is given.
const EnvVar = "TASK_TRACKER_OUTPUT"

// Format represents an output format.
type Format int

const (
	// FormatAuto uses the default format (table).
	FormatAuto Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
	// FormatTable outputs a human-readable table.
	FormatTable
	// FormatCompact outputs one-line-per-record compact format.
	FormatCompact
)

// Detect returns the appropriate format based on flags, environment, and
// the configured fallback. Precedence: flags, then EnvVar, then fallback,
// then table.
func Detect(jsonFlag, tableFlag, compactFlag bool, fallback string) Format {
	if jsonFlag {
		return FormatJSON
	}
	if compactFlag {
		return FormatCompact
	}
	if tableFlag {
		return FormatTable
	}

	if f, ok := parseFormat(os.Getenv(EnvVar)); ok {
		return f
	}
	if f, ok := parseFormat(fallback); ok {
		return f
	}
	return FormatTable
}

func parseFormat(name string) (Format, bool) {
	switch name {
	case "json":
		return FormatJSON, true
	case "compact", "oneline":
		return FormatCompact, true
	case "table":
		return FormatTable, true
	}
	return FormatAuto, false
}
