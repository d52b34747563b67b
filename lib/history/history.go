// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"slices"
	"strings"
	"time"
)

// Entry is one attempted statement.
type Entry struct {
	// Statement is the text as entered, whitespace included.
	Statement string

	// At is when the statement was entered.
	At time.Time
}

// Blank reports whether the statement holds no tokens.
func (e Entry) Blank() bool {
	return strings.TrimLeft(e.Statement, " \t") == ""
}

// Log is an append-only sequence of entries. The zero value is an
// empty log ready to use.
type Log struct {
	entries []Entry
}

// Append records a statement.
func (l *Log) Append(statement string, at time.Time) {
	l.entries = append(l.entries, Entry{Statement: statement, At: at})
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry, oldest first.
func (l *Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Recent returns up to count of the newest entries, oldest first. A
// count of zero or less returns every entry.
func (l *Log) Recent(count int) []Entry {
	if count <= 0 || count >= len(l.entries) {
		return l.Entries()
	}
	return slices.Clone(l.entries[len(l.entries)-count:])
}

// Last returns the newest entry.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// PreviousStatement returns the newest non-blank statement recorded
// before the newest entry. It is what a blank statement, just
// appended, replays.
func (l *Log) PreviousStatement() (string, bool) {
	for index := len(l.entries) - 2; index >= 0; index-- {
		if !l.entries[index].Blank() {
			return l.entries[index].Statement, true
		}
	}
	return "", false
}
