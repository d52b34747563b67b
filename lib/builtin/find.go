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

// InstallFind adds "find", which fuzzy-searches every command path.
func InstallFind(sh *shell.Shell) *command.Node {
	return add(sh, "find", "<pattern...>", "Search command paths", command.Func(findCommands))
}

func findCommands(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	if tokens.Empty() {
		return tooFew(node, out)
	}
	pattern := strings.Join(tokens.Strings(), " ")
	sh := shellOf(node)
	matches := sh.Find(pattern)
	if len(matches) == 0 {
		sh.Messages().UnableToFind(out, pattern)
		return false
	}
	paths := make([]string, len(matches))
	for index, match := range matches {
		paths[index] = match.Path
	}
	sh.Messages().Candidates(out, paths)
	return true
}
