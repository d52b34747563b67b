// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"slices"

	"github.com/bureau-foundation/cmdshell/lib/match"
	"github.com/bureau-foundation/cmdshell/lib/message"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// Handler supplies a node's behavior.
type Handler interface {
	// Execute runs the command with the tokens that follow its path.
	// The result is the statement's success.
	Execute(node *Node, tokens *token.Stream, out output.Sink) bool

	// Usage prints help for the command.
	Usage(node *Node, out output.Sink) bool
}

// Defaults implements [Handler] with the default behavior. Embed it to
// override a single method.
type Defaults struct{}

func (Defaults) Execute(node *Node, tokens *token.Stream, out output.Sink) bool {
	return node.DefaultExecute(tokens, out)
}

func (Defaults) Usage(node *Node, out output.Sink) bool {
	return node.DefaultUsage(out)
}

// Func adapts an execute function to a [Handler] with default usage.
type Func func(node *Node, tokens *token.Stream, out output.Sink) bool

func (f Func) Execute(node *Node, tokens *token.Stream, out output.Sink) bool {
	return f(node, tokens, out)
}

func (f Func) Usage(node *Node, out output.Sink) bool {
	return node.DefaultUsage(out)
}

// Scope is the state shared by every node of one shell.
type Scope struct {
	Aliases  *AliasTable
	Messages *message.Catalog
}

// NewScope returns a scope with an empty alias table. A nil catalog
// selects the default messages.
func NewScope(messages *message.Catalog) *Scope {
	if messages == nil {
		messages = message.New(message.Templates{})
	}
	return &Scope{Aliases: NewAliasTable(), Messages: messages}
}

// Node is one command in the tree.
type Node struct {
	name string

	// Usage is the argument synopsis printed after the command path,
	// for example "<name> <value>".
	Usage string

	// Description is a one-line summary shown in usage output.
	Description string

	// Baton is the host's opaque context for this command.
	Baton any

	handler  Handler
	parent   *Node
	children []*Node
	scope    *Scope
}

// NewRoot creates a parentless node in scope.
func NewRoot(scope *Scope, name string, handler Handler, baton any) *Node {
	return &Node{name: name, handler: handler, Baton: baton, scope: scope}
}

// AddChild appends a child that inherits this node's baton.
func (n *Node) AddChild(name string, handler Handler) *Node {
	return n.AddChildWithBaton(name, handler, n.Baton)
}

// AddChildWithBaton appends a child with its own baton.
func (n *Node) AddChildWithBaton(name string, handler Handler, baton any) *Node {
	child := &Node{name: name, handler: handler, Baton: baton, parent: n, scope: n.scope}
	n.children = append(n.children, child)
	return child
}

// Name returns the command name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil for a root. The parent
// outlives the child for as long as the child is attached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the children in declaration order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.children) == 0 }

// Scope returns the scope the node was created in.
func (n *Node) Scope() *Scope { return n.scope }

// Messages returns the scope's message catalog.
func (n *Node) Messages() *message.Catalog { return n.scope.Messages }

// Child returns the first child named exactly name, or nil.
func (n *Node) Child(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// Path returns the space-joined names from the root to this node.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + " " + n.name
}

// Walk visits n and its descendants depth-first in declaration order.
// Returning false from visit stops the walk; Walk then returns false.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Alias registers name as a shortcut for this node in the scope's
// alias table, replacing any previous target. Empty names are refused.
func (n *Node) Alias(name string) bool {
	if name == "" {
		return false
	}
	n.scope.Aliases.Add(name, n)
	return true
}

// Remove detaches child and its subtree, dropping every alias that
// points at a node in it. It reports whether child was attached here.
func (n *Node) Remove(child *Node) bool {
	index := slices.Index(n.children, child)
	if index < 0 {
		return false
	}
	n.children = slices.Delete(n.children, index, index+1)
	child.Walk(func(node *Node) bool {
		n.scope.Aliases.RemoveTarget(node)
		return true
	})
	child.parent = nil
	return true
}

// Execute runs the node's handler, or the default behavior when it
// has none.
func (n *Node) Execute(tokens *token.Stream, out output.Sink) bool {
	if n.handler == nil {
		return n.DefaultExecute(tokens, out)
	}
	return n.handler.Execute(n, tokens, out)
}

// ShowUsage prints the node's help through its handler, or the
// default usage when it has none.
func (n *Node) ShowUsage(out output.Sink) bool {
	if n.handler == nil {
		return n.DefaultUsage(out)
	}
	return n.handler.Usage(n, out)
}

// DefaultExecute is the behavior of a node without an execute
// override. A childless node fails. Otherwise the next positional
// token, if any, named no child: print "no subcommand" and the
// children within [match.SuggestThreshold] edits of it. With no
// remaining tokens, list the children. Both cases succeed.
func (n *Node) DefaultExecute(tokens *token.Stream, out output.Sink) bool {
	if n.Leaf() {
		return false
	}

	front, ok := tokens.Front()
	if !ok {
		n.PrintChildren(out)
		return true
	}

	messages := n.Messages()
	messages.NoSubcommand(out, front.String())
	if similar := match.Similar(n.children, (*Node).Name, front.String(), match.SuggestThreshold); len(similar) > 0 {
		messages.DidYouMean(out)
		messages.Candidates(out, Names(similar))
	}
	return true
}

// DefaultUsage prints the usage header, the description when set, and
// the child list when there are children. It always succeeds.
func (n *Node) DefaultUsage(out output.Sink) bool {
	defer out.PushIndent(2)()
	messages := n.Messages()
	messages.Usage(out, n.Path(), n.Usage, n.Description)
	if !n.Leaf() {
		messages.Subcommands(out)
		n.PrintChildren(out)
	}
	return true
}

// PrintChildren lists the children's names, indented two columns.
func (n *Node) PrintChildren(out output.Sink) {
	defer out.PushIndent(2)()
	for _, child := range n.children {
		out.Println(true, "%s", child.name)
	}
}

// Fail prints an error line and returns false, so a handler can
// report and fail in one statement:
//
//	return command.Fail(out, "expected %d arguments", 2)
func Fail(out output.Sink, format string, args ...any) bool {
	output.Styledln(out, output.Error, format, args...)
	return false
}

// BatonAs returns the node's baton as a T.
func BatonAs[T any](node *Node) (T, bool) {
	value, ok := node.Baton.(T)
	return value, ok
}

// Names returns the names of nodes in order.
func Names(nodes []*Node) []string {
	result := make([]string, len(nodes))
	for index, node := range nodes {
		result[index] = node.name
	}
	return result
}
