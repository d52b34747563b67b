// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/bureau-foundation/cmdshell/lib/clock"
	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/history"
	"github.com/bureau-foundation/cmdshell/lib/message"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// Shell is one command session.
type Shell struct {
	scope       *command.Scope
	roots       []*command.Node
	history     history.Log
	identifiers token.Identifiers
	baton       any

	logger    *slog.Logger
	clock     clock.Clock
	sessionID string
}

// Option configures a [Shell].
type Option func(*Shell)

// WithLogger sets the logger for resolution and dispatch events. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithCatalog replaces the default message catalog.
func WithCatalog(catalog *message.Catalog) Option {
	return func(s *Shell) { s.scope.Messages = catalog }
}

// WithClock sets the time source for history timestamps.
func WithClock(c clock.Clock) Option {
	return func(s *Shell) { s.clock = c }
}

// WithBaton sets the baton given to commands added with [Shell.AddCommand].
func WithBaton(baton any) Option {
	return func(s *Shell) { s.baton = baton }
}

// WithIdentifiers seeds the $name substitution table.
func WithIdentifiers(identifiers map[string]uint64) Option {
	return func(s *Shell) { maps.Copy(s.identifiers, identifiers) }
}

// New returns an empty shell.
func New(options ...Option) *Shell {
	s := &Shell{
		scope:       command.NewScope(nil),
		identifiers: make(token.Identifiers),
		logger:      slog.New(slog.DiscardHandler),
		clock:       clock.Real(),
		sessionID:   uuid.NewString(),
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With("session", s.sessionID)
	return s
}

// SessionID returns the random identifier of this session, attached
// to every log record the shell emits.
func (s *Shell) SessionID() string { return s.sessionID }

// Messages returns the message catalog.
func (s *Shell) Messages() *message.Catalog { return s.scope.Messages }

// Scope returns the scope shared by every command of this shell.
func (s *Shell) Scope() *command.Scope { return s.scope }

// AddCommand adds a root command carrying the shell's default baton.
func (s *Shell) AddCommand(name string, handler command.Handler) *command.Node {
	return s.AddCommandWithBaton(name, handler, s.baton)
}

// AddCommandWithBaton adds a root command with its own baton.
func (s *Shell) AddCommandWithBaton(name string, handler command.Handler, baton any) *command.Node {
	node := command.NewRoot(s.scope, name, handler, baton)
	s.roots = append(s.roots, node)
	return node
}

// Commands returns the root commands in declaration order.
func (s *Shell) Commands() []*command.Node {
	return slices.Clone(s.roots)
}

// RemoveCommand detaches a command from the tree along with every
// alias into its subtree. node may be a root or any descendant.
func (s *Shell) RemoveCommand(node *command.Node) bool {
	if node == nil {
		return false
	}
	if parent := node.Parent(); parent != nil {
		return parent.Remove(node)
	}
	index := slices.Index(s.roots, node)
	if index < 0 {
		return false
	}
	s.roots = slices.Delete(s.roots, index, index+1)
	node.Walk(func(n *command.Node) bool {
		s.scope.Aliases.RemoveTarget(n)
		return true
	})
	return true
}

// AliasAdd maps name to node, replacing an existing alias of the same
// name. It refuses a nil node or an empty name.
func (s *Shell) AliasAdd(node *command.Node, name string) bool {
	if node == nil {
		return false
	}
	return node.Alias(name)
}

// AliasRemove deletes one alias and reports whether it existed.
func (s *Shell) AliasRemove(name string) bool {
	return s.scope.Aliases.Remove(name)
}

// AliasRemoveTarget deletes every alias pointing at node.
func (s *Shell) AliasRemoveTarget(node *command.Node) bool {
	return s.scope.Aliases.RemoveTarget(node)
}

// AliasFind returns the target of an alias, or nil.
func (s *Shell) AliasFind(name string) *command.Node {
	return s.scope.Aliases.Find(name)
}

// Aliases returns the alias table.
func (s *Shell) Aliases() *command.AliasTable {
	return s.scope.Aliases
}

// History returns every statement attempted so far, oldest first.
func (s *Shell) History() []history.Entry {
	return s.history.Entries()
}

// RecentHistory returns up to count of the newest statements.
func (s *Shell) RecentHistory(count int) []history.Entry {
	return s.history.Recent(count)
}

// LastStatement returns the newest history entry, or "" when the
// history is empty.
func (s *Shell) LastStatement() string {
	entry, _ := s.history.Last()
	return entry.Statement
}

// SetIdentifier binds $name to value for later statements.
func (s *Shell) SetIdentifier(name string, value uint64) {
	s.identifiers[name] = value
}

// UnsetIdentifier removes a binding and reports whether it existed.
func (s *Shell) UnsetIdentifier(name string) bool {
	if _, ok := s.identifiers[name]; !ok {
		return false
	}
	delete(s.identifiers, name)
	return true
}

// Identifier returns the value bound to name.
func (s *Shell) Identifier(name string) (uint64, bool) {
	value, ok := s.identifiers[name]
	return value, ok
}

// Identifiers returns a copy of the identifier table.
func (s *Shell) Identifiers() map[string]uint64 {
	return maps.Clone(s.identifiers)
}
