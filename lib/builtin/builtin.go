// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
)

// Install adds every builtin to sh as a root command.
func Install(sh *shell.Shell) {
	InstallAlias(sh)
	InstallHistory(sh)
	InstallIdentifiers(sh)
	InstallFind(sh)
	InstallHelp(sh)
	InstallEcho(sh)
}

func add(sh *shell.Shell, name, usage, description string, handler command.Handler) *command.Node {
	node := sh.AddCommandWithBaton(name, handler, sh)
	node.Usage = usage
	node.Description = description
	return node
}

func child(parent *command.Node, name, usage, description string, handler command.Handler) *command.Node {
	node := parent.AddChild(name, handler)
	node.Usage = usage
	node.Description = description
	return node
}

// shellOf returns the shell a builtin was installed on.
func shellOf(node *command.Node) *shell.Shell {
	sh, ok := command.BatonAs[*shell.Shell](node)
	if !ok {
		panic("builtin: command " + node.Path() + " was not installed with a shell baton")
	}
	return sh
}

// tooFew reports missing arguments by printing the command's usage.
func tooFew(node *command.Node, out output.Sink) bool {
	node.ShowUsage(out)
	return false
}
