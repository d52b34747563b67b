// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates the diagnostic logger. When stderr is a terminal
// it uses slog.TextHandler for human-readable output; when stderr is
// piped or redirected it uses slog.JSONHandler.
func newLogger(level slog.Level) *slog.Logger {
	return newLoggerTo(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

func newLoggerTo(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
