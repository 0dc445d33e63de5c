// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the names
// server and client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func setupGlobals(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// ParseLevel converts a level name into a zerolog level. An empty or unknown
// name yields DebugLevel.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.DebugLevel
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.DebugLevel
	}
	return lvl
}

func newWithWriter(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns the server logger: JSON to stdout with a "role" field, a
// timestamp and the calling function under "func". level sets the global
// level (see [ParseLevel]).
func NewLogger(role, level string) *Logger {
	setupGlobals(level)
	return newWithWriter(os.Stdout, role)
}

// NewClientLogger builds the client logger. The terminal belongs to the TUI,
// so entries go to the file at path; os.Stderr is used when the file cannot
// be opened. The returned close function releases the file and is safe to
// call when stderr is in use.
func NewClientLogger(role, path, level string) (*Logger, func() error) {
	setupGlobals(level)

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l := newWithWriter(os.Stderr, role)
		l.Warn().Err(err).Str("path", path).Msg("cannot open log file, logging to stderr")
		return l, func() error { return nil }
	}

	return newWithWriter(logFile, role), logFile.Close
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
