// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// StatementSeparator splits one input line into statements.
const StatementSeparator = ";"

// Tokenize splits statement on runs of spaces and tabs, pushes each
// token into stream, then pushes the empty flush marker. It returns
// the number of tokens pushed, excluding the marker, so zero means the
// statement was blank.
func Tokenize(statement string, stream *Stream) int {
	fields := strings.FieldsFunc(statement, isSeparator)
	for _, field := range fields {
		stream.Push(field)
	}
	stream.Push("")
	return len(fields)
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t'
}

// SplitStatements splits expr on the statement separator. Empty
// statements between adjacent separators are dropped; statements that
// contain only whitespace are kept, since a blank statement means
// "repeat the previous one".
func SplitStatements(expr string) []string {
	var statements []string
	for _, statement := range strings.Split(expr, StatementSeparator) {
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
