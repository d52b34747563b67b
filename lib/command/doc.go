// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package command defines the command tree the shell resolves input
// against.
//
// A [Node] is one named command. It owns its children in declaration
// order and keeps a non-owning pointer to its parent, used only to
// build the space-joined [Node.Path] shown in usage headers. Sibling
// names need not be unique; two siblings that tie for a token are an
// ambiguity reported at run time, not a construction error.
//
// Behavior is supplied through the two-method [Handler] interface:
// Execute receives the classified [token.Stream] left after the
// command path was consumed, and Usage prints help. Most interior
// nodes need no handler at all. The defaults differ by shape:
//
//   - a node with children lists them (or, given a token that names no
//     child, prints "no subcommand" with close matches) and succeeds;
//   - a childless node without a handler always fails.
//
// Embed [Defaults] in a handler type to override only one method, or
// use [Func] for an execute-only handler.
//
// Nodes created from the same [Scope] share an [AliasTable] and a
// message catalog. Aliases never own their targets: [Node.Remove]
// detaches a subtree and drops every alias pointing into it.
//
// The Baton is an opaque value owned by the host and passed down the
// tree; children inherit their parent's baton unless given their own.
// The engine never inspects it. [BatonAs] gives typed access.
package command
