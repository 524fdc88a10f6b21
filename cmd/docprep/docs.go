package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/sqlite"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	category := docprep.Category(c.Category)
	if category != "" && !category.Valid() {
		return docprep.Errorf(docprep.EINVALID, "unknown category %q", c.Category)
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	docs, err := sqlite.NewIndexStore(db).Documents(deps.Ctx, category)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents indexed in %s. Run 'docprep process <input> <output> --db %s' first.\n", c.DB, c.DB)
		return docprep.Errorf(docprep.ENOTFOUND, "no documents indexed")
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d total, indexed %s):\n\n", len(docs), docs[0].IndexedAt.Format("2006-01-02 15:04"))
	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s [%s] complexity %.2f, %d chunks\n     %s\n",
			doc.Position+1, doc.Title, doc.Category, doc.Complexity, doc.Chunks, doc.FilePath)
		if len(doc.Dependencies) > 0 {
			fmt.Fprintf(deps.Stdout, "     mentioned by: %s\n", strings.Join(doc.Dependencies, ", "))
		}
	}
	return nil
}
