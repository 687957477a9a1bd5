// Package errors provides the classified error primitives used across housebuilder.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, invalid_state, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting for the CLI
//
// Example usage:
//
//	err := errors.InvalidStateError("no builder registered").
//		WithContext("profile", "full").
//		Build()
package errors
