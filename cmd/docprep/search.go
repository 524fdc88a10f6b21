package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/fs"
	"github.com/fwojciec/docprep/sqlite"
)

// snippetLength is the number of characters of content shown per result.
const snippetLength = 160

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	category := docprep.Category(c.Category)
	if category != "" && !category.Valid() {
		return docprep.Errorf(docprep.EINVALID, "unknown category %q", c.Category)
	}

	var reader docprep.IndexReader = fs.NewIndexReader(c.Index)
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		reader = sqlite.NewIndexStore(db)
	}

	entries, err := reader.ReadIndex(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docprep.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Query, " ")
	results := docprep.Search(entries, query, docprep.SearchOptions{Limit: c.Limit, Category: category})

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []docprep.SearchResult{}
		}
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", query)
		return nil
	}

	for _, r := range results {
		md := r.Entry.Metadata
		fmt.Fprintf(deps.Stdout, "%d. %s [%s] %.2f\n", r.Rank, md.ParentTitle, md.Category, r.Similarity)
		if md.SectionTitle != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", md.SectionTitle)
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", snippet(r.Entry.Content))
	}
	return nil
}

// snippet flattens whitespace and truncates to snippetLength runes.
func snippet(content string) string {
	s := strings.Join(strings.Fields(content), " ")
	runes := []rune(s)
	if len(runes) <= snippetLength {
		return s
	}
	return string(runes[:snippetLength]) + "..."
}
