// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging sets up the structured logger shared by the TUI and
// the CLI subcommands.
//
// The TUI owns the terminal, so its records go to a log file. CLI
// subcommands log to stderr. Every record carries the session id of the
// process that wrote it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Options configures Setup.
type Options struct {
	// Level is the minimum level written.
	Level slog.Level

	// File is the log file. Empty writes to Writer instead.
	File string

	// Writer is used when File is empty. Nil means stderr.
	Writer io.Writer
}

// Logger is the process logger plus the file it owns.
type Logger struct {
	*slog.Logger

	// SessionID is attached to every record.
	SessionID string

	closer io.Closer
}

// Setup builds the logger, installs it as the slog default and returns it.
func Setup(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var closer io.Closer
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	return install(w, opts.Level, closer), nil
}

// Discard installs a logger that drops everything. Used by tests.
func Discard() *Logger {
	return install(io.Discard, slog.LevelError+1, nil)
}

func install(w io.Writer, level slog.Level, closer io.Closer) *Logger {
	session := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("session", session)
	slog.SetDefault(logger)

	return &Logger{Logger: logger, SessionID: session, closer: closer}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// =============================================================================
// THROTTLING
// =============================================================================

// Throttle lets one call through per interval. Autosave fires on every
// pause in typing; logging each save would flood the file.
type Throttle struct {
	sometimes rate.Sometimes
}

// NewThrottle allows at most one call per interval, plus the first.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{sometimes: rate.Sometimes{First: 1, Interval: interval}}
}

// Do runs f if the throttle allows it.
func (t *Throttle) Do(f func()) {
	t.sometimes.Do(f)
}
