// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"strings"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// Execute runs every statement in expr in order. When a statement
// fails, the failure is reported and the remaining statements are
// skipped. It returns true only if every statement succeeded.
//
// An empty line is run as a single blank statement and so replays the
// previous one. Input made only of separators runs nothing and
// succeeds.
func (s *Shell) Execute(expr string, out output.Sink) bool {
	statements := token.SplitStatements(expr)
	if len(statements) == 0 && !strings.Contains(expr, token.StatementSeparator) {
		statements = []string{expr}
	}
	for _, statement := range statements {
		if !s.executeStatement(statement, out) {
			s.logger.Debug("statement failed", "statement", statement)
			s.Messages().CommandFailed(out, statement)
			return false
		}
	}
	return true
}

func (s *Shell) executeStatement(statement string, out output.Sink) bool {
	s.history.Append(statement, s.clock.Now())

	tokens := token.NewStream(s.identifiers)
	if token.Tokenize(statement, tokens) == 0 {
		previous, ok := s.history.PreviousStatement()
		if !ok {
			s.logger.Debug("blank statement with nothing to replay")
			return false
		}
		s.logger.Debug("replaying statement", "statement", previous)
		s.Messages().Replay(out, previous)
		return s.executeStatement(previous, out)
	}

	resolution := s.resolve(tokens)
	s.logger.Debug("statement resolved",
		"statement", statement,
		"state", resolution.State.String(),
		"command", nodePath(resolution.Node),
		"alias", resolution.Alias,
	)

	switch resolution.State {
	case Ambiguous:
		messages := s.Messages()
		messages.PossibleCompletions(out)
		messages.Candidates(out, command.Names(resolution.Candidates))
		return false
	case Unmatched:
		messages := s.Messages()
		messages.InvalidCommand(out)
		if len(resolution.Suggestions) > 0 {
			messages.DidYouMean(out)
			messages.Candidates(out, command.Names(resolution.Suggestions))
		}
		return false
	}

	if resolution.Usage {
		return resolution.Node.ShowUsage(out)
	}
	return resolution.Node.Execute(resolution.Tokens, out)
}

func nodePath(node *command.Node) string {
	if node == nil {
		return ""
	}
	return node.Path()
}
