// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"slices"
	"strings"

	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/match"
)

// Complete returns the names that could replace the last partial word
// of input. Every complete word before it must lead to exactly one
// command, through the alias table for the first word or by prefix
// match. Input ending in whitespace completes an empty word, listing
// every child of the command reached.
//
// Child names come first in declaration order. At the root level,
// alias names follow in sorted order.
func (s *Shell) Complete(input string) []string {
	if index := strings.LastIndex(input, ";"); index >= 0 {
		input = input[index+1:]
	}
	words := strings.Fields(input)
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(input, " ") && !strings.HasSuffix(input, "\t") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	level := s.roots
	for index, word := range words {
		if index == 0 {
			if target := s.scope.Aliases.Find(word); target != nil {
				level = target.Children()
				continue
			}
		}
		matches := match.Best(level, (*command.Node).Name, word)
		if len(matches) != 1 {
			return nil
		}
		level = matches[0].Children()
	}

	var names []string
	for _, node := range level {
		if strings.HasPrefix(node.Name(), partial) && !slices.Contains(names, node.Name()) {
			names = append(names, node.Name())
		}
	}
	if len(words) == 0 {
		for _, alias := range s.scope.Aliases.Names() {
			if strings.HasPrefix(alias, partial) && !slices.Contains(names, alias) {
				names = append(names, alias)
			}
		}
	}
	return names
}
