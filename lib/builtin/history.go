// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"time"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// InstallHistory adds "history", which lists the statements entered
// this session. The optional -n pair limits the listing to the newest
// entries.
func InstallHistory(sh *shell.Shell) *command.Node {
	return add(sh, "history", "[-n <count>]", "List previous statements", command.Func(listHistory))
}

func listHistory(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	sh := shellOf(node)
	count := int64(0)
	if value, ok := tokens.Pair("-n"); ok {
		parsed, valid := value.Int64()
		if !valid || parsed < 0 {
			sh.Messages().Error(out, "invalid count '"+value.String()+"'")
			return false
		}
		count = parsed
	}

	// The history already holds this statement; leave it out.
	entries := sh.History()
	if count > 0 {
		entries = sh.RecentHistory(int(count) + 1)
	}
	if len(entries) > 0 {
		entries = entries[:len(entries)-1]
	}

	first := len(sh.History()) - len(entries)
	for index, entry := range entries {
		out.Println(true, "%4d  %s  %s", first+index, entry.At.Format(time.TimeOnly), entry.Statement)
	}
	return true
}
