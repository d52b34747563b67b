// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

// DefaultIndent is the indentation a new sink starts with.
const DefaultIndent = 2

// Sink receives all text the shell produces.
//
// Print and Println do not take the lock themselves; the engine runs
// one statement at a time and only producers running concurrently with
// it need [Guard].
type Sink interface {
	// Lock acquires exclusive access to the sink.
	Lock()

	// Unlock releases exclusive access.
	Unlock()

	// PushIndent raises the indentation by n columns and returns a
	// function that restores the previous level.
	PushIndent(n int) (restore func())

	// Indent returns the current indentation in columns.
	Indent() int

	// Print writes a formatted fragment, preceded by the current
	// indentation when indent is true.
	Print(indent bool, format string, args ...any)

	// Println is Print followed by a line terminator.
	Println(indent bool, format string, args ...any)

	// EOL writes a line terminator.
	EOL()
}

// Kind classifies a line so a themed sink can style it.
type Kind int

const (
	// Plain is ordinary output.
	Plain Kind = iota

	// Heading introduces a list or section ("possible completions:").
	Heading

	// Error reports a failure.
	Error

	// Suggestion is a candidate name offered to the user.
	Suggestion

	// Echo repeats a statement back before replaying it.
	Echo
)

// Styler is implemented by sinks that can style lines by kind.
type Styler interface {
	// Styledln is Println with the formatted text styled for kind.
	Styledln(kind Kind, indent bool, format string, args ...any)
}

// Styledln prints an indented line styled for kind when sink supports
// styling, and a plain indented line otherwise.
func Styledln(sink Sink, kind Kind, format string, args ...any) {
	if styler, ok := sink.(Styler); ok {
		styler.Styledln(kind, true, format, args...)
		return
	}
	sink.Println(true, format, args...)
}

// Guard locks sink and returns the matching unlock. Use it with defer
// so the sink is released on every return path:
//
//	defer output.Guard(sink)()
func Guard(sink Sink) (release func()) {
	sink.Lock()
	return sink.Unlock
}
