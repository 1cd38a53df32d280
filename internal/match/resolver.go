package match

import "sort"

// Match pairs a candidate title with its confidence score.
// Scores range 0-100; higher means closer to the query.
type Match struct {
	Title string
	Score float64
}

// ResolveOne returns the highest-scoring candidate for a free-text query.
// The boolean is false only when candidates is empty. Ties keep the
// earliest candidate, so repeated calls with identical input are stable.
func ResolveOne(query string, candidates []string) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}

	best := Match{Title: candidates[0], Score: Score(query, candidates[0])}
	for _, c := range candidates[1:] {
		if s := Score(query, c); s > best.Score {
			best = Match{Title: c, Score: s}
		}
	}

	return best, true
}

// ResolveMany returns candidates scoring at least minScore, ordered by
// score descending, truncated to limit. Candidates with equal scores keep
// their input order.
func ResolveMany(query string, candidates []string, limit int, minScore float64) []Match {
	var matches []Match
	for _, c := range candidates {
		if s := Score(query, c); s >= minScore {
			matches = append(matches, Match{Title: c, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// Score computes a 0-100 confidence score between a query and a candidate.
// It takes the better of a whole-string similarity and a substring
// similarity, so a query matching part of a longer title still scores high.
func Score(query, candidate string) float64 {
	q := []rune(Normalize(query))
	c := []rune(Normalize(candidate))
	full := ratio(q, c)
	if partial := partialRatio(q, c); partial > full {
		return partial
	}
	return full
}

// ratio is the normalized Levenshtein similarity between two rune slices
func ratio(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 100.0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 100.0
	}

	dist := levenshtein(a, b)
	return (1.0 - float64(dist)/float64(longer)) * 100.0
}

// partialRatio slides the shorter string across the longer and returns the
// best window similarity
func partialRatio(a, b []rune) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 || len(shorter) == len(longer) {
		return 0.0
	}

	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		if r := ratio(shorter, longer[i:i+len(shorter)]); r > best {
			best = r
		}
	}

	return best
}

// levenshtein computes the edit distance between two rune slices using a
// two-row dynamic programming table
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
