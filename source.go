package docprep

import "context"

// Source lists and reads raw input documents.
type Source interface {
	// Files returns paths relative to the source root, in lexical order,
	// whose extension is one of extensions. Names starting with an
	// underscore are skipped.
	Files(ctx context.Context, recursive bool, extensions []string) ([]string, error)

	// ReadFile returns the contents of the file at rel.
	ReadFile(ctx context.Context, rel string) (string, error)

	// Path returns the full path of rel as recorded in outputs.
	Path(rel string) string
}

// Cleaner strips boilerplate from a document body.
type Cleaner interface {
	// Clean returns the cleaned body, or "" if nothing remains.
	Clean(body string, preserveStructure bool) string
}

// Structurer splits cleaned text into chunks.
type Structurer interface {
	Structure(cleaned string, meta Metadata) []*Chunk
}
