// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"strings"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// InstallEcho adds "echo", which prints its arguments after $name
// substitution. A -n anywhere suppresses the line terminator.
func InstallEcho(sh *shell.Shell) *command.Node {
	return add(sh, "echo", "[-n] <words...>", "Print arguments", command.Func(echo))
}

func echo(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	// The raw sequence keeps words in input order even when one was
	// taken as the value of -n.
	var words []string
	newline := true
	for _, raw := range tokens.Raw() {
		if raw.Equal("-n") {
			newline = false
			continue
		}
		words = append(words, raw.String())
	}
	out.Print(true, "%s", strings.Join(words, " "))
	if newline {
		out.EOL()
	}
	return true
}
