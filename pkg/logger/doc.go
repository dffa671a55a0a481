// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment("production", "drivercheck"))
//	log.Info("policy loaded", logger.Count("rules", v.Len()))
//
// Options:
//
//   - WithEnvironment – per-environment level, format and "env" attribute
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel – minimum level
//   - WithOutput – destination writer
//   - WithAttr – static attributes on every record
//
// Helpers such as Error, Errors and Violation return an empty slog.Attr for nil
// errors, which slog drops, so callers can pass them without a nil check.
package logger
