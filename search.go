package docprep

import (
	"math"
	"sort"
	"strings"
)

// DefaultSearchLimit caps results when SearchOptions.Limit is zero.
const DefaultSearchLimit = 10

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`

	// Restrict results to a single category
	Category Category `json:"category,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Entry      IndexEntry `json:"chunk"`
	Similarity float64    `json:"similarity"`
	Rank       int        `json:"rank"`
	Tokens     int        `json:"tokens"`
}

// Search scores entries by the number of occurrences of each query term in
// their content (case-insensitive) and returns the best matches first.
// Entries matching no term are dropped. Ties keep index order.
func Search(entries []IndexEntry, query string, opts SearchOptions) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	type scored struct {
		entry IndexEntry
		score int
	}

	var matches []scored
	for _, e := range entries {
		if opts.Category != "" && e.Metadata.Category != opts.Category {
			continue
		}
		content := strings.ToLower(e.Content)
		var score int
		for _, term := range terms {
			score += strings.Count(content, term)
		}
		if score > 0 {
			matches = append(matches, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]SearchResult, 0, len(matches))
	for i, m := range matches {
		results = append(results, SearchResult{
			Entry:      m.entry,
			Similarity: math.Min(0.95, 0.3+float64(m.score)*0.1),
			Rank:       i + 1,
			Tokens:     len(strings.Fields(m.entry.Content)),
		})
	}
	return results
}
