package clone_test

import (
	"testing"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/clone"
)

// ── Similarity ─────────────────────────────────────────────────────────────

func TestSimilarity_Symmetric(t *testing.T) {
	cases := []struct{ a, b string }{
		{"golang backend engineer", "senior golang engineer"},
		{"build distributed systems", "maintain distributed pipelines"},
		{"", "remote contract position"},
		{"short a an to", "completely different words here"},
	}
	for _, c := range cases {
		if clone.Similarity(c.a, c.b) != clone.Similarity(c.b, c.a) {
			t.Errorf("Similarity(%q, %q) is not symmetric", c.a, c.b)
		}
	}
}

func TestSimilarity_Reflexive(t *testing.T) {
	text := "design build and operate cloud infrastructure"
	if got := clone.Similarity(text, text); got != 1.0 {
		t.Errorf("Similarity(a, a) = %v, want 1.0", got)
	}
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	if got := clone.Similarity("", ""); got != 0.0 {
		t.Errorf("Similarity(\"\", \"\") = %v, want 0.0", got)
	}
}

// Tokens of length <= 3 are dropped, so inputs made only of short words
// have an empty union — defined as 0, not NaN.
func TestSimilarity_OnlyShortTokens(t *testing.T) {
	if got := clone.Similarity("a an to is of", "it be or so"); got != 0.0 {
		t.Errorf("Similarity(short-only, short-only) = %v, want 0.0", got)
	}
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	if got := clone.Similarity("SENIOR ENGINEER ROLE", "senior engineer role"); got != 1.0 {
		t.Errorf("Similarity with different casing = %v, want 1.0", got)
	}
}

// Four shared tokens out of five distinct: 3 in both sides + one unique
// each → 3/5.
func TestSimilarity_KnownOverlap(t *testing.T) {
	got := clone.Similarity("alpha beta gamma delta", "alpha beta gamma omega")
	if got != 0.6 {
		t.Errorf("Similarity = %v, want 0.6", got)
	}
}

func TestSimilarity_Bounded(t *testing.T) {
	cases := [][2]string{
		{"engineer", "engineer engineer engineer"},
		{"totally different", "nothing shared whatsoever"},
		{"punctuation, splits; tokens!", "punctuation splits tokens"},
	}
	for _, c := range cases {
		got := clone.Similarity(c[0], c[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", c[0], c[1], got)
		}
	}
}
