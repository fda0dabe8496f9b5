// Package logger provides configurable logging for the editor. Output goes to
// a file (never the terminal the editor is drawing on) and can be narrowed to
// specific packages while debugging.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string

	// LogFilePath is the output file. Empty disables logging, "-" is stderr.
	LogFilePath string

	// EnabledPackages only logs messages originating from these packages
	// (if non-empty). Package name is the immediate directory name
	// (e.g. "core", "buffer", "modehandler").
	EnabledPackages []string
	// DisabledPackages prevents logging from these packages. Overrides
	// EnabledPackages.
	DisabledPackages []string

	level               slog.Leveler
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// process parses string levels/lists into efficient internal forms.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}

	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
