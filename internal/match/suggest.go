package match

import (
	"strings"
)

// DefaultMinScore is the lowest similarity Suggest accepts.
const DefaultMinScore = 0.6

// NormalizeIdent case-folds an identifier and strips separators.
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return r
	}, strings.ToLower(s))
}

// Suggest returns the candidate most similar to name, if any scores at
// least DefaultMinScore. Earlier candidates win ties.
func Suggest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)

	best, bestScore := "", DefaultMinScore
	found := false

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := LevenshteinNormalized(norm, NormalizeIdent(c))
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}

// Hint formats a "did you mean" suffix for error messages, or returns the
// empty string when nothing is close.
func Hint(name string, candidates []string) string {
	s, ok := Suggest(name, candidates)
	if !ok {
		return ""
	}

	return " (did you mean " + s + "?)"
}
