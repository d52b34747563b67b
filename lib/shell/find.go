// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/match"
)

// Match is one command found by [Shell.Find] or [Shell.Apropos].
type Match struct {
	Node *command.Node
	Path string

	// Score orders results. For Find a higher score is better; for
	// Apropos it is the edit distance, and lower is better.
	Score int
}

// Find ranks every command path in the tree against a fuzzy pattern,
// best first. An empty pattern returns every command in tree order.
func (s *Shell) Find(pattern string) []Match {
	nodes := s.allNodes()
	paths := make([]string, len(nodes))
	for index, node := range nodes {
		paths[index] = node.Path()
	}

	ranked := match.Rank(paths, pattern)
	results := make([]Match, len(ranked))
	for index, rank := range ranked {
		results[index] = Match{Node: nodes[rank.Index], Path: rank.Text, Score: rank.Score}
	}
	return results
}

// Apropos searches command paths and descriptions for the characters
// of query in order, ignoring case and diacritics. Results are ordered
// by edit distance, closest first.
func (s *Shell) Apropos(query string) []Match {
	nodes := s.allNodes()
	targets := make([]string, len(nodes))
	for index, node := range nodes {
		targets[index] = node.Path() + " " + node.Description
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)

	results := make([]Match, len(ranks))
	for index, rank := range ranks {
		node := nodes[rank.OriginalIndex]
		results[index] = Match{Node: node, Path: node.Path(), Score: rank.Distance}
	}
	return results
}

func (s *Shell) allNodes() []*command.Node {
	var nodes []*command.Node
	for _, root := range s.roots {
		root.Walk(func(node *command.Node) bool {
			nodes = append(nodes, node)
			return true
		})
	}
	return nodes
}
