// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"maps"
	"slices"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// InstallIdentifiers adds "set", "unset" and "idents", which manage
// the values substituted for $name tokens.
func InstallIdentifiers(sh *shell.Shell) {
	add(sh, "set", "<name> <value>", "Bind $name to an integer", command.Func(setIdentifier))
	add(sh, "unset", "<name>", "Remove a $name binding", command.Func(unsetIdentifier))
	add(sh, "idents", "", "List $name bindings", command.Func(listIdentifiers))
}

func setIdentifier(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	name, ok := tokens.PopString()
	if !ok || tokens.Empty() {
		return tooFew(node, out)
	}
	sh := shellOf(node)
	value, ok := tokens.PopUint64()
	if !ok {
		front, _ := tokens.Front()
		sh.Messages().Error(out, "invalid value '"+front.String()+"'")
		return false
	}
	if !tokens.Empty() {
		sh.Messages().MalformedExpression(out)
		return false
	}
	sh.SetIdentifier(name, value)
	return true
}

func unsetIdentifier(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	name, ok := tokens.PopString()
	if !ok {
		return tooFew(node, out)
	}
	sh := shellOf(node)
	if !sh.UnsetIdentifier(name) {
		sh.Messages().UnknownIdentifier(out, name)
		return false
	}
	return true
}

func listIdentifiers(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	identifiers := shellOf(node).Identifiers()
	for _, name := range slices.Sorted(maps.Keys(identifiers)) {
		value := identifiers[name]
		out.Println(true, "$%s = %d (%#x)", name, value, value)
	}
	return true
}
