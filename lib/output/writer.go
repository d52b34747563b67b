// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Writer is a [Sink] that writes to an io.Writer.
type Writer struct {
	mutex  sync.Mutex
	writer io.Writer
	indent int
	theme  *Theme
}

// Option configures a [Writer] or [Buffer].
type Option func(*Writer)

// WithTheme styles lines printed through [Styledln].
func WithTheme(theme *Theme) Option {
	return func(writer *Writer) { writer.theme = theme }
}

// WithIndent sets the starting indentation. Negative values are
// treated as zero.
func WithIndent(columns int) Option {
	return func(writer *Writer) { writer.indent = max(columns, 0) }
}

// NewWriter returns a sink writing to w with [DefaultIndent].
func NewWriter(w io.Writer, options ...Option) *Writer {
	writer := &Writer{writer: w, indent: DefaultIndent}
	for _, option := range options {
		option(writer)
	}
	return writer
}

func (w *Writer) Lock()   { w.mutex.Lock() }
func (w *Writer) Unlock() { w.mutex.Unlock() }

func (w *Writer) PushIndent(n int) (restore func()) {
	previous := w.indent
	w.indent += n
	return func() { w.indent = previous }
}

func (w *Writer) Indent() int { return w.indent }

func (w *Writer) Print(indent bool, format string, args ...any) {
	if indent {
		io.WriteString(w.writer, strings.Repeat(" ", w.indent))
	}
	fmt.Fprintf(w.writer, format, args...)
}

func (w *Writer) Println(indent bool, format string, args ...any) {
	w.Print(indent, format, args...)
	w.EOL()
}

func (w *Writer) EOL() {
	io.WriteString(w.writer, "\n")
}

// Styledln prints a line styled for kind by the writer's theme. Only
// the text is styled, never the indentation.
func (w *Writer) Styledln(kind Kind, indent bool, format string, args ...any) {
	if w.theme == nil {
		w.Println(indent, format, args...)
		return
	}
	if indent {
		io.WriteString(w.writer, strings.Repeat(" ", w.indent))
	}
	io.WriteString(w.writer, w.theme.Render(kind, fmt.Sprintf(format, args...)))
	w.EOL()
}

// Buffer is a [Sink] that collects output in memory.
type Buffer struct {
	*Writer
	contents *bytes.Buffer
}

// NewBuffer returns an empty in-memory sink.
func NewBuffer(options ...Option) *Buffer {
	contents := &bytes.Buffer{}
	return &Buffer{Writer: NewWriter(contents, options...), contents: contents}
}

// String returns everything written so far, styling included.
func (b *Buffer) String() string {
	return b.contents.String()
}

// Plain returns everything written so far with ANSI sequences removed.
func (b *Buffer) Plain() string {
	return ansi.Strip(b.contents.String())
}

// Lines returns the plain output split into lines, without the empty
// string that follows a final line terminator.
func (b *Buffer) Lines() []string {
	plain := strings.TrimSuffix(b.Plain(), "\n")
	if plain == "" {
		return nil
	}
	return strings.Split(plain, "\n")
}

// Reset discards the collected output. Indentation is unchanged.
func (b *Buffer) Reset() {
	b.contents.Reset()
}
