// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package token splits a statement into tokens and classifies them
// into the argument views a command consumes.
//
// [Tokenize] breaks a statement on spaces and tabs and pushes each
// token into a [Stream], followed by one empty "flush" push that marks
// the end of the statement. [SplitStatements] breaks a full input line
// into its ';'-separated statements before tokenizing.
//
// A [Stream] keeps four views over the pushed tokens:
//
//   - the raw sequence, every token in input order;
//   - the positional queue, tokens that are neither flags nor values;
//   - the flag set, '-' prefixed tokens with no value after them;
//   - the pairs, a '-' prefixed token followed by a plain token.
//
// So "cmd -v -x 10 pos1" yields positional [cmd pos1], flags {-v} and
// pairs {-x: 10}.
//
// Tokens of the form $name are replaced by the decimal value of name
// in the stream's [Identifiers] table before classification.
//
// A [Token] converts to an integer on demand. Conversion accepts an
// optional leading '-' and an optional "0x" prefix for hexadecimal,
// and reports failure with a boolean instead of an error.
package token
