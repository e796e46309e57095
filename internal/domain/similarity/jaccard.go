// Package similarity scores photos against each other by the overlap of their
// descriptive keywords.
package similarity

import (
	"math"
	"sort"
	"strings"
)

// Score is the Jaccard index of the two keyword sets after case folding.
// Either set being empty yields 0.
func Score(a, b []string) float64 {
	setA := keywordSet(a)
	setB := keywordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for k := range setA {
		if setB[k] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func keywordSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[strings.ToLower(k)] = true
	}
	return set
}

type Candidate struct {
	ID       string
	Keywords []string
}

type Match struct {
	ID    string
	Score float64
	// Percent is round(Score*100).
	Percent int
}

// Rank keeps candidates scoring strictly above threshold and returns the best k,
// highest first. Equal scores keep the candidates' original order.
func Rank(target []string, candidates []Candidate, k int, threshold float64) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score := Score(target, c.Keywords)
		if score <= threshold {
			continue
		}
		matches = append(matches, Match{
			ID:      c.ID,
			Score:   score,
			Percent: int(math.Round(score * 100)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k >= 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
