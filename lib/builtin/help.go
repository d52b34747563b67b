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

// InstallHelp adds "help". With a command path it prints that
// command's usage; with -s <query> it searches descriptions; alone it
// lists the root commands.
func InstallHelp(sh *shell.Shell) *command.Node {
	return add(sh, "help", "[command path...] | -s <query>", "Show command usage", command.Func(showHelp))
}

func showHelp(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	sh := shellOf(node)

	if query, ok := tokens.Pair("-s"); ok {
		matches := sh.Apropos(query.String())
		if len(matches) == 0 {
			sh.Messages().UnableToFind(out, query.String())
			return false
		}
		describe(out, matchedNodes(matches))
		return true
	}

	if tokens.Empty() {
		describe(out, sh.Commands())
		return true
	}

	path := strings.Join(tokens.Strings(), " ")
	target, found := ResolvePath(sh, path)
	if !found {
		sh.Messages().UnableToFind(out, path)
		return false
	}
	return target.ShowUsage(out)
}

func matchedNodes(matches []shell.Match) []*command.Node {
	nodes := make([]*command.Node, len(matches))
	for index, match := range matches {
		nodes[index] = match.Node
	}
	return nodes
}

// describe prints one line per node: its path padded to a common
// width, then its description.
func describe(out output.Sink, nodes []*command.Node) {
	width := 0
	for _, node := range nodes {
		width = max(width, len(node.Path()))
	}
	for _, node := range nodes {
		if node.Description == "" {
			out.Println(true, "%s", node.Path())
			continue
		}
		out.Println(true, "%-*s  %s", width, node.Path(), node.Description)
	}
}
