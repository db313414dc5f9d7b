package source

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Closest picks the candidate that best matches query. Exact id or title
// matches win, then title prefixes, then substrings, then the smallest edit
// distance. Candidates further away than the query is long are ignored.
// Ties keep the earlier candidate.
func Closest(candidates []paging.Item, query string) (paging.Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return paging.Item{}, false
	}

	best, bestScore := paging.Item{}, -1
	for _, it := range candidates {
		score := rank(it, q)
		if score < 0 {
			continue
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = it, score
		}
	}
	return best, bestScore >= 0
}

// rank scores a candidate; lower is better and -1 rejects it.
func rank(it paging.Item, q string) int {
	id, title := strings.ToLower(it.ID), strings.ToLower(it.Label())
	switch {
	case id == q || title == q:
		return 0
	case strings.HasPrefix(title, q) || strings.HasPrefix(id, q):
		return 1
	case strings.Contains(title, q):
		return 2
	}
	d := levenshtein.ComputeDistance(q, title)
	if d > len(q) {
		return -1
	}
	return 3 + d
}
