// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/match"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// UsageRequest is the trailing positional token that asks for a
// command's usage instead of running it.
const UsageRequest = "?"

// State is the outcome of resolving a statement.
type State int

const (
	// Blank means the statement held no tokens.
	Blank State = iota

	// Resolved means a command was found. Tokens past its path may
	// remain.
	Resolved

	// Ambiguous means a token prefix-matched several siblings equally
	// well.
	Ambiguous

	// Unmatched means the leading token named no root command and no
	// alias.
	Unmatched
)

func (s State) String() string {
	switch s {
	case Blank:
		return "blank"
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case Unmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Resolution describes where a statement leads in the command tree.
type Resolution struct {
	State State

	// Node is the deepest command matched. It is set when State is
	// Resolved, and for Ambiguous when the ambiguity arose below the
	// root level.
	Node *command.Node

	// Alias is true when Node was reached through the alias table.
	Alias bool

	// Candidates are the siblings tied for the ambiguous token, in
	// declaration order.
	Candidates []*command.Node

	// Suggestions are root commands close to an unmatched token.
	Suggestions []*command.Node

	// Tokens holds what is left of the statement after the command
	// path was consumed.
	Tokens *token.Stream

	// Usage is true when the last positional token is [UsageRequest].
	Usage bool
}

// Resolve finds the command a statement names without recording it
// in history or executing anything.
func (s *Shell) Resolve(statement string) Resolution {
	tokens := token.NewStream(s.identifiers)
	if token.Tokenize(statement, tokens) == 0 {
		return Resolution{State: Blank, Tokens: tokens}
	}
	return s.resolve(tokens)
}

func (s *Shell) resolve(tokens *token.Stream) Resolution {
	result := Resolution{Tokens: tokens}

	front, hasFront := tokens.Front()
	if hasFront {
		if target := s.scope.Aliases.Find(front.String()); target != nil && tokens.Consume() {
			result.State = Resolved
			result.Node = target
			result.Alias = true
			result.Usage = usageRequested(tokens)
			return result
		}
	}

	var current *command.Node
	level := s.roots
	for !tokens.Empty() {
		next, _ := tokens.Front()
		matches := match.Best(level, (*command.Node).Name, next.String())
		if len(matches) > 1 {
			result.State = Ambiguous
			result.Node = current
			result.Candidates = matches
			return result
		}
		// A flag ahead of the path token also ends descent.
		if len(matches) == 0 || !tokens.Consume() {
			break
		}
		current = matches[0]
		level = current.Children()
	}

	if current == nil {
		result.State = Unmatched
		if hasFront {
			result.Suggestions = match.Similar(s.roots, (*command.Node).Name, front.String(), match.SuggestThreshold)
		}
		return result
	}

	result.State = Resolved
	result.Node = current
	result.Usage = usageRequested(tokens)
	return result
}

func usageRequested(tokens *token.Stream) bool {
	last, ok := tokens.Last()
	return ok && last.Equal(UsageRequest)
}
