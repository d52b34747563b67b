// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell resolves and dispatches statements against a tree of
// commands.
//
// A [Shell] owns the root commands, the alias table, the statement
// history and the $name identifier table of one session. [Shell.Execute]
// takes a line of input, splits it into ";"-separated statements and
// runs them in order, stopping at the first failure.
//
// Each statement is resolved in one pass:
//
//  1. The statement is recorded in the history before anything else.
//  2. A blank statement replays the previous non-blank one, echoing it
//     first. With nothing to replay the statement fails silently.
//  3. If the leading token is an alias, its target is the command and
//     tree descent is skipped.
//  4. Otherwise each leading token is prefix-matched against the
//     children of the current level. One best match descends; no match
//     stops descent; several tied matches are an ambiguity, reported
//     as "possible completions:" and failed.
//  5. A resolved command whose last positional token is "?" prints its
//     usage. Otherwise it executes with the tokens left over.
//
// [Shell.Resolve] runs steps 3 and 4 without touching history or
// executing anything, which is what completion and the help builtin
// need.
//
// A Shell is not safe for concurrent use. Output producers running
// alongside a statement coordinate through the sink's lock, see
// [output.Guard].
package shell
