package match

import "sort"

// DefaultThreshold is the minimum similarity for a key to be suggested.
const DefaultThreshold = 0.5

// Candidate is a known key scored against a name that did not resolve.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every name against target. The result is sorted by score
// descending, ties broken alphabetically. Names equal to target are skipped.
func Rank(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		if name == target {
			continue
		}

		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedSimilarity(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names similar to target.
func Suggest(target string, names []string, limit int) []string {
	ranked := Rank(target, names).AboveThreshold(DefaultThreshold).Top(limit)

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
