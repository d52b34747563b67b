// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package output defines the sink every user-visible line of the shell
// flows through.
//
// The engine never writes to a terminal or file directly. Commands,
// the default usage renderer and the message catalog all print through
// a [Sink], which owns three pieces of state:
//
//   - an exclusive-access lock, taken with [Guard] when a producer
//     (for example a command running in the background) needs to emit
//     a multi-line block without interleaving;
//   - the current indentation level, raised with [Sink.PushIndent] and
//     restored by calling the returned function, usually deferred;
//   - the formatting itself: [Sink.Print] and [Sink.Println] take a
//     format template and arguments with fmt semantics.
//
// [Writer] writes to any io.Writer. [Buffer] collects output in memory
// for tests and for front ends that display statement output as a
// block. Both optionally carry a [Theme] that styles lines by [Kind]
// with lipgloss; sinks without a theme print plain text.
package output
