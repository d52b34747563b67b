// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package match

import "testing"

func TestRank(t *testing.T) {
	texts := []string{"math add", "service status", "service stop", "history"}

	ranked := Rank(texts, "svst")
	found := false
	for _, result := range ranked {
		if result.Text == "math add" || result.Text == "history" {
			t.Errorf("Rank(svst) matched %q", result.Text)
		}
		if result.Text == "service status" {
			found = true
			if texts[result.Index] != result.Text {
				t.Errorf("Index %d does not point at %q", result.Index, result.Text)
			}
		}
	}
	if !found {
		t.Errorf("Rank(svst) = %v, want a match for %q", ranked, "service status")
	}
}

func TestRank_CaseInsensitive(t *testing.T) {
	ranked := Rank([]string{"service status"}, "SVC")
	if len(ranked) != 1 {
		t.Fatalf("Rank(SVC) = %v, want one match", ranked)
	}
}

func TestRank_EmptyPatternMatchesEverything(t *testing.T) {
	texts := []string{"b", "a"}
	ranked := Rank(texts, "  ")
	if len(ranked) != 2 || ranked[0].Text != "b" || ranked[1].Text != "a" {
		t.Errorf("Rank(empty) = %v, want all texts in input order", ranked)
	}
}

func TestRank_OrderedByScore(t *testing.T) {
	ranked := Rank([]string{"xhxixsxtxoxrxy", "history"}, "history")
	if len(ranked) != 2 {
		t.Fatalf("Rank = %v, want two matches", ranked)
	}
	if ranked[0].Text != "history" {
		t.Errorf("best match = %q, want %q", ranked[0].Text, "history")
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("results not sorted by descending score: %v", ranked)
		}
	}
}
