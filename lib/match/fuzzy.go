// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Ranked is one string accepted by [Rank].
type Ranked struct {
	// Index is the position of the string in the input slice.
	Index int

	// Text is the matched string.
	Text string

	// Score is fzf's match score. Higher is better.
	Score int
}

var initScheme sync.Once

// Rank fuzzy-matches pattern against every string in texts and returns
// the matches ordered by descending score, ties kept in input order.
// Matching is case-insensitive. An empty pattern matches everything
// with a score of zero.
func Rank(texts []string, pattern string) []Ranked {
	initScheme.Do(func() { algo.Init("default") })

	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		ranked := make([]Ranked, len(texts))
		for index, text := range texts {
			ranked[index] = Ranked{Index: index, Text: text}
		}
		return ranked
	}

	runes := []rune(pattern)
	slab := util.MakeSlab(100*1024, 2048)

	var ranked []Ranked
	for index, text := range texts {
		chars := util.ToChars([]byte(text))
		result, _ := algo.FuzzyMatchV2(false, true, true, &chars, runes, false, slab)
		if result.Start < 0 {
			continue
		}
		ranked = append(ranked, Ranked{Index: index, Text: text, Score: int(result.Score)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
