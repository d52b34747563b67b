// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"maps"
	"slices"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// session is the host state shared by the demo commands through their
// batons.
type session struct {
	// done is set by "exit"; the front end stops reading input.
	done bool

	// services maps a service name to whether it is running.
	services map[string]bool
}

func newSession() *session {
	return &session{services: map[string]bool{"api": false, "worker": false}}
}

// installDemo adds the demo command tree:
//
//	service start|stop <name>, service status [name]
//	math add|sub|mul <integers...> [-x]
//	exit
func installDemo(sh *shell.Shell, state *session) {
	service := sh.AddCommandWithBaton("service", nil, state)
	service.Usage = "<subcommand>"
	service.Description = "Start, stop and inspect demo services"

	start := service.AddChild("start", command.Func(func(node *command.Node, tokens *token.Stream, out output.Sink) bool {
		return setRunning(node, tokens, out, true)
	}))
	start.Usage = "<name>"
	start.Description = "Start a service"

	stop := service.AddChild("stop", command.Func(func(node *command.Node, tokens *token.Stream, out output.Sink) bool {
		return setRunning(node, tokens, out, false)
	}))
	stop.Usage = "<name>"
	stop.Description = "Stop a service"

	status := service.AddChild("status", command.Func(serviceStatus))
	status.Usage = "[name]"
	status.Description = "Report whether services are running"

	math := sh.AddCommand("math", nil)
	math.Usage = "<subcommand>"
	math.Description = "Integer arithmetic"
	for _, operation := range []struct {
		name        string
		description string
		apply       func(a, b int64) int64
	}{
		{"add", "Sum integers", func(a, b int64) int64 { return a + b }},
		{"sub", "Subtract integers from the first", func(a, b int64) int64 { return a - b }},
		{"mul", "Multiply integers", func(a, b int64) int64 { return a * b }},
	} {
		node := math.AddChild(operation.name, arithmetic(operation.apply))
		node.Usage = "<integer> <integer...> [-x]"
		node.Description = operation.description
	}

	exit := sh.AddCommandWithBaton("exit", command.Func(func(node *command.Node, tokens *token.Stream, out output.Sink) bool {
		state, _ := command.BatonAs[*session](node)
		state.done = true
		return true
	}), state)
	exit.Description = "Leave the shell"
}

func setRunning(node *command.Node, tokens *token.Stream, out output.Sink, running bool) bool {
	state, _ := command.BatonAs[*session](node)
	name, ok := tokens.PopString()
	if !ok {
		node.ShowUsage(out)
		return false
	}
	if _, known := state.services[name]; !known {
		return command.Fail(out, "unknown service '%s'", name)
	}
	state.services[name] = running
	return true
}

func serviceStatus(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	state, _ := command.BatonAs[*session](node)
	names := slices.Sorted(maps.Keys(state.services))
	if name, ok := tokens.PopString(); ok {
		if _, known := state.services[name]; !known {
			return command.Fail(out, "unknown service '%s'", name)
		}
		names = []string{name}
	}
	for _, name := range names {
		status := "stopped"
		if state.services[name] {
			status = "running"
		}
		out.Println(true, "%-8s %s", name, status)
	}
	return true
}

// arithmetic folds every positional integer with apply. A trailing -x
// prints the result in hexadecimal.
func arithmetic(apply func(a, b int64) int64) command.Func {
	return func(node *command.Node, tokens *token.Stream, out output.Sink) bool {
		if tokens.Len() < 2 {
			node.ShowUsage(out)
			return false
		}
		result, ok := tokens.PopInt64()
		for ok && !tokens.Empty() {
			var operand int64
			if operand, ok = tokens.PopInt64(); ok {
				result = apply(result, operand)
			}
		}
		if !ok {
			front, _ := tokens.Front()
			return command.Fail(out, "not an integer '%s'", front.String())
		}
		if tokens.Flag("-x") {
			out.Println(true, "%#x", result)
			return true
		}
		out.Println(true, "%d", result)
		return true
	}
}
