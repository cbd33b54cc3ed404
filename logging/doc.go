// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON (default) or logfmt-style text and integrates with
// Uber's Fx dependency injection framework through the root App.
package logging
