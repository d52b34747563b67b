// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package match

import "math"

const (
	// Perfect is the score of an input identical to the candidate. It
	// is strictly greater than any prefix length.
	Perfect = math.MaxInt32

	// NoMatch is the score of an input that is not a literal prefix of
	// the candidate.
	NoMatch = -1

	// SuggestThreshold is the exclusive edit distance bound the shell
	// uses when suggesting sibling names for an unmatched token.
	SuggestThreshold = 3
)

// PrefixScore rates input as an abbreviation of candidate. It returns
// Perfect when the two are identical, len(input) when input is a
// proper prefix of candidate, and NoMatch otherwise (input longer than
// candidate, or any differing byte).
func PrefixScore(candidate, input string) int {
	for i := 0; ; i++ {
		if i == len(candidate) {
			if i == len(input) {
				return Perfect
			}
			return NoMatch
		}
		if i == len(input) {
			return i
		}
		if candidate[i] != input[i] {
			return NoMatch
		}
	}
}

// Best returns the candidates tied for the highest prefix score
// against input, in the order they appear in candidates. A strictly
// higher score replaces the retained set, a tie joins it, and lower
// scores are dropped. Candidates that are not matched at all are never
// retained, so an empty result means nothing matched.
func Best[T any](candidates []T, name func(T) string, input string) []T {
	var best []T
	bestScore := 0
	for _, candidate := range candidates {
		score := PrefixScore(name(candidate), input)
		switch {
		case score < 0:
			continue
		case score > bestScore || best == nil:
			best = append(best[:0], candidate)
			bestScore = score
		case score == bestScore:
			best = append(best, candidate)
		}
	}
	return best
}

// EditDistance computes the Levenshtein distance between a and b: the
// minimum number of single-byte insertions, deletions, or
// substitutions that turn one into the other.
func EditDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep the shorter string along the row so the single row of the
	// distance matrix is as small as possible.
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diagonal := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			above := row[i]
			row[i] = min(above+1, row[i-1]+1, diagonal+cost)
			diagonal = above
		}
	}

	return row[len(a)]
}

// Similar returns every candidate whose name is within threshold edits
// of input (distance strictly less than threshold), preserving order.
func Similar[T any](candidates []T, name func(T) string, input string, threshold int) []T {
	var similar []T
	for _, candidate := range candidates {
		if EditDistance(name(candidate), input) < threshold {
			similar = append(similar, candidate)
		}
	}
	return similar
}
