// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func identity(s string) string { return s }

func TestPrefixScore(t *testing.T) {
	tests := []struct {
		candidate, input string
		want             int
	}{
		{"", "", Perfect},
		{"status", "status", Perfect},
		{"status", "", 0},
		{"status", "s", 1},
		{"status", "stat", 4},
		{"status", "statusx", NoMatch}, // input longer than candidate
		{"status", "stop", NoMatch},    // differs mid-way
		{"status", "x", NoMatch},
		{"", "x", NoMatch},
	}

	for _, test := range tests {
		t.Run(test.candidate+"/"+test.input, func(t *testing.T) {
			got := PrefixScore(test.candidate, test.input)
			if got != test.want {
				t.Errorf("PrefixScore(%q, %q) = %d, want %d", test.candidate, test.input, got, test.want)
			}
		})
	}
}

func TestPrefixScore_EveryPrefixScoresItsLength(t *testing.T) {
	candidate := "configure"
	for length := 1; length < len(candidate); length++ {
		prefix := candidate[:length]
		if got := PrefixScore(candidate, prefix); got != length {
			t.Errorf("PrefixScore(%q, %q) = %d, want %d", candidate, prefix, got, length)
		}
	}
	if got := PrefixScore(candidate, candidate); got <= len(candidate) {
		t.Errorf("perfect score %d is not greater than any prefix length", got)
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		input      string
		want       []string
	}{
		{
			name:       "ambiguous prefix keeps declaration order",
			candidates: []string{"start", "stop", "status"},
			input:      "st",
			want:       []string{"start", "stop", "status"},
		},
		{
			name:       "longer prefix narrows",
			candidates: []string{"start", "stop", "status"},
			input:      "sto",
			want:       []string{"stop"},
		},
		{
			name:       "exact match beats longer candidate",
			candidates: []string{"set", "setup"},
			input:      "set",
			want:       []string{"set"},
		},
		{
			name:       "exact match declared later still wins",
			candidates: []string{"setup", "set"},
			input:      "set",
			want:       []string{"set"},
		},
		{
			name:       "no match",
			candidates: []string{"start", "stop"},
			input:      "run",
			want:       nil,
		},
		{
			name:       "empty candidate list",
			candidates: nil,
			input:      "run",
			want:       nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Best(test.candidates, identity, test.input)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Best(%q) mismatch (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"status", "stutas", 2},
		{"service", "servce", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"→"+test.b, func(t *testing.T) {
			if got := EditDistance(test.a, test.b); got != test.want {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"status", "stutas"},
		{"alias", "aliases"},
		{"", "history"},
	}

	for _, pair := range pairs {
		forward := EditDistance(pair[0], pair[1])
		reverse := EditDistance(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("EditDistance(%q, %q) = %d, but reverse = %d", pair[0], pair[1], forward, reverse)
		}
		if self := EditDistance(pair[0], pair[0]); self != 0 {
			t.Errorf("EditDistance(%q, %q) = %d, want 0", pair[0], pair[0], self)
		}
	}
}

func TestSimilar(t *testing.T) {
	candidates := []string{"start", "stop", "status", "restart"}

	got := Similar(candidates, identity, "stat", SuggestThreshold)
	want := []string{"start", "stop", "status"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Similar mismatch (-want +got):\n%s", diff)
	}

	if got := Similar(candidates, identity, "zzzzzz", SuggestThreshold); got != nil {
		t.Errorf("Similar(zzzzzz) = %v, want nil", got)
	}
}
