package graph

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ============================================================================
// String Similarity
// ============================================================================

// similarityRatio computes the normalized sequence-match ratio between two
// strings in [0, 1], comparing character by character.
func similarityRatio(a, b string) float64 {
	matcher := difflib.NewMatcher(chars(a), chars(b))
	return matcher.Ratio()
}

func chars(s string) []string {
	return strings.Split(s, "")
}

// closeMatches returns up to n candidates whose ratio against the query
// clears the cutoff, best first. Ties keep the candidates' original order.
func closeMatches(query string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		candidate string
		ratio     float64
	}
	var matches []scored
	for _, candidate := range candidates {
		if ratio := similarityRatio(query, candidate); ratio >= cutoff {
			matches = append(matches, scored{candidate, ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.candidate
	}
	return result
}
