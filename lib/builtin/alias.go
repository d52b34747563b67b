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

// InstallAlias adds "alias" with add, remove and list subcommands.
func InstallAlias(sh *shell.Shell) *command.Node {
	alias := add(sh, "alias", "<subcommand>", "Manage command aliases", nil)
	child(alias, "add", "<name> <command path...>", "Alias a command path", command.Func(aliasAdd))
	child(alias, "remove", "<name>", "Remove an alias", command.Func(aliasRemove))
	child(alias, "list", "", "List aliases", command.Func(aliasList))
	return alias
}

func aliasAdd(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	name, ok := tokens.PopString()
	if !ok || tokens.Empty() {
		return tooFew(node, out)
	}
	path := strings.Join(tokens.Strings(), " ")

	sh := shellOf(node)
	target, found := ResolvePath(sh, path)
	if !found {
		sh.Messages().UnableToFind(out, path)
		return false
	}
	return sh.AliasAdd(target, name)
}

func aliasRemove(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	name, ok := tokens.PopString()
	if !ok {
		return tooFew(node, out)
	}
	sh := shellOf(node)
	if !sh.AliasRemove(name) {
		sh.Messages().UnableToFind(out, name)
		return false
	}
	return true
}

func aliasList(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	sh := shellOf(node)
	table := sh.Aliases()
	sh.Messages().AliasCount(out, table.Len())
	defer out.PushIndent(2)()
	for _, name := range table.Names() {
		out.Println(true, "%s -> %s", name, table.Find(name).Path())
	}
	return true
}

// ResolvePath returns the command that path names exactly, with every
// word consumed as part of the command path.
func ResolvePath(sh *shell.Shell, path string) (*command.Node, bool) {
	resolution := sh.Resolve(path)
	if resolution.State != shell.Resolved || !resolution.Tokens.Empty() {
		return nil, false
	}
	return resolution.Node, true
}
