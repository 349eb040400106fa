// Package logging provides structured logging utilities for the recordingpage
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Token masking for safe credential logging
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "zoom.listRecordings")
//	logger.Info("fetched recordings",
//	    logging.Status(logging.StatusSuccess))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("token acquired",
//	    "token", logging.SanitizeToken(token))
//
// # Security Considerations
//
// Access tokens and client secrets are never logged directly; SanitizeToken
// reduces them to a length indicator.
package logging
