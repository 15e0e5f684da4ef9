// Package clone implements duplicate and scam detection over job postings:
// pairwise text similarity, clone-type classification, and transitive
// grouping of related postings.
package clone

import (
	"strings"
	"unicode"
)

// Tokens shorter than this are dropped before comparison — short filler
// words ("a", "the", "and", "for") dominate job-ad prose and would
// inflate every score.
const minTokenLen = 4

// tokenSet lowercases text, splits it on runs of non-word characters and
// returns the set of tokens of length >= minTokenLen.
func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLen {
			continue
		}
		set[f] = struct{}{}
	}
	return set
}

// Similarity returns the Jaccard similarity of the two texts' token sets,
// in [0,1]. It is symmetric, and 1.0 for identical non-empty inputs.
// When neither side contributes a token (blank input, or only short
// tokens) the result is 0, never NaN.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
