// ============================================================================
// textcase - String format conversion toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command-line loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	tclog "github.com/msto63/textcase/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json", "text" or "logfmt" (default: text)

	// Output defaults to stderr so stdout stays free for results
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer

	// Verbose lowers the level to debug unless it is already lower
	Verbose bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *tclog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose && level > tclog.LevelDebug {
		level = tclog.LevelDebug
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tclog.NewWithConfig(tclog.Config{
		Level:  level,
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a text logger at the default level
func NewSimpleLogger(name string) *tclog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to tclog.Level, falling back to warn
func parseLevel(level string) tclog.Level {
	parsed, err := tclog.ParseLevel(level)
	if err != nil {
		return tclog.DefaultLevel()
	}
	return parsed
}

// parseFormat converts a string format to tclog.Format, falling back to text
func parseFormat(format string) tclog.Format {
	if strings.TrimSpace(format) == "" {
		return tclog.FormatText
	}
	parsed, err := tclog.ParseFormat(format)
	if err != nil {
		return tclog.FormatText
	}
	return parsed
}
