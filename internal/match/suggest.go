package match

import (
	"sort"
	"strings"
)

// MinSuggestScore is the lowest normalized similarity reported by Suggest.
const MinSuggestScore = 0.5

// Suggest returns the candidates closest to word, best first, keeping only
// those with a normalized similarity of at least MinSuggestScore. At most
// limit candidates are returned. Comparison is case-insensitive.
func Suggest(word string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	upper := strings.ToUpper(word)

	var ranked []scored

	for _, c := range candidates {
		score := Similarity(upper, strings.ToUpper(c))
		if score >= MinSuggestScore && score < 1.0 {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
