// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package history records every statement a shell session attempts.
//
// The [Log] is append-only and lives in memory for the lifetime of one
// shell. It is an attempt log, not a success log: failed statements
// and blank statements (which ask the shell to replay the previous
// one) are recorded too. [Log.PreviousStatement] finds the statement a
// blank entry replays.
package history
