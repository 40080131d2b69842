package match

// maxSuggestDistance bounds how far a misspelling may be from a suggestion.
const maxSuggestDistance = 2

// Suggest returns the candidate closest to name by edit distance, or "" when
// none is within maxSuggestDistance. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1

	for _, c := range candidates {
		d := Levenshtein(name, c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
