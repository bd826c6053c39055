// Package log provides structured logging for plus.
//
// Package: log
// Title: Structured Logging for plus
// Description: Levelled, structured log output with contextual fields and
//              several output formats. Errors built with core/error are logged
//              with their code, severity and details, at a level chosen from
//              their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Console format styled with lipgloss, command context
//
// The library packages under utils never log. The command line front end
// configures one logger from the log.level and log.format settings, derives
// a per-command logger with WithCommand and reports failures with LogError.
// Log output goes to stderr so that results on stdout can be piped.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//	}).WithCommand("complex div")
//
//	logger.Debug("parsed operands", log.Fields{"a": "1 + 2i", "b": "3 - i"})
//
//	if _, err := mathx.Factorial(-1); err != nil {
//		logger.LogError(err) // info level, error_code=MATHX_DOMAIN_ERROR
//	}
//
//	timer := logger.StartTimer("recolor")
//	// ... work
//	timer.Stop()
package log
