// Package log provides structured logging for textcase.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with levels, contextual fields,
//              correlation IDs, JSON/text/logfmt output and timers. It is
//              used by the CLI and, optionally, by the conversion library to
//              trace cache traffic.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	import tclog "github.com/msto63/textcase/foundation/core/log"
//
//	logger := tclog.NewWithConfig(tclog.Config{
//		Level:  tclog.LevelDebug,
//		Format: tclog.FormatJSON,
//		Name:   "textcase",
//	})
//	logger.Info("converted", tclog.String("format", "slug"))
package log
