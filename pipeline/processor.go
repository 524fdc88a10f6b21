// Package pipeline orchestrates document post-processing: reading,
// cleaning, chunking, classification, ordering and persistence.
package pipeline

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/bloom"
	"golang.org/x/sync/errgroup"
)

// Input extensions.
var (
	MarkdownExtensions = []string{".md"}
	HTMLExtensions     = []string{".html", ".htm"}
)

// duplicateFPRate is the false positive rate for duplicate chunk detection.
const duplicateFPRate = 0.001

// Options controls a processing run.
type Options struct {
	// Recursive descends into subdirectories of the input.
	Recursive bool

	// Flatten writes all outputs into one directory, encoding the source
	// subdirectories in the file name.
	Flatten bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressProcessed
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	File      string
	Chunks    int
	Reason    string
	Error     error
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Processor runs the pipeline over every file of a Source.
type Processor struct {
	Source     docprep.Source
	Parser     docprep.FrontmatterParser
	Cleaner    docprep.Cleaner
	Structurer docprep.Structurer
	Classifier docprep.Classifier
	Sorter     docprep.Sorter
	Store      docprep.OutputStore

	// Index, if set, receives the ordered documents after the store commits.
	Index docprep.IndexWriter

	// Extractor and Converter, if both set, enable HTML inputs.
	Extractor docprep.Extractor
	Converter docprep.Converter

	Concurrency int
	Progress    ProgressFunc

	// Now returns the processing timestamp. Defaults to time.Now.
	Now func() time.Time
}

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	doc    *docprep.ProcessedDocument
	reason string
	err    error
}

// ProcessAll processes every input file and persists the results.
//
// Per-file failures and empty documents are recorded in Summary.Skipped and
// never abort the run. Errors listing the input, writing outputs or a
// canceled context abort the store and are returned.
func (p *Processor) ProcessAll(ctx context.Context, opts Options) (_ *docprep.Summary, err error) {
	defer func() {
		if err != nil {
			_ = p.Store.Abort()
		}
	}()

	exts := MarkdownExtensions
	if p.htmlEnabled() {
		exts = append(append([]string(nil), MarkdownExtensions...), HTMLExtensions...)
	}

	files, err := p.Source.Files(ctx, opts.Recursive, exts)
	if err != nil {
		return nil, fmt.Errorf("list input: %w", err)
	}

	results, err := p.processFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	var docs []*docprep.ProcessedDocument
	var skipped []docprep.SkippedFile
	var folders []string
	seen := make(map[string]bool)
	for i, r := range results {
		if r.doc == nil {
			skipped = append(skipped, docprep.SkippedFile{File: p.Source.Path(files[i]), Reason: r.reason})
			continue
		}
		docs = append(docs, r.doc)
		if !seen[r.doc.SourceFolder] {
			seen[r.doc.SourceFolder] = true
			folders = append(folders, r.doc.SourceFolder)
		}
	}

	for _, doc := range docs {
		doc.Category = p.classify(ctx, doc)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := p.Sorter.Sort(docs)

	summary, err := p.save(ctx, ordered, opts.Flatten)
	if err != nil {
		return nil, err
	}
	summary.SourceFolders = folders
	summary.Skipped = skipped

	if err := p.Store.SaveSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}
	if err := p.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit output: %w", err)
	}

	if p.Index != nil {
		if err := p.Index.WriteIndex(ctx, ordered); err != nil {
			return nil, fmt.Errorf("write index: %w", err)
		}
	}

	p.notify(ProgressEvent{Type: ProgressFinished, Completed: len(files), Total: len(files)})

	return summary, nil
}

// processFiles reads and chunks files concurrently. Results keep the order
// of files.
func (p *Processor) processFiles(ctx context.Context, files []string) ([]fileResult, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(files)
	p.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	type indexed struct {
		position int
		result   fileResult
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, rel := range files {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				resultCh <- indexed{position: i, result: p.processFile(gctx, rel)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]fileResult, total)
	var completed int
	for r := range resultCh {
		completed++
		results[r.position] = r.result

		event := ProgressEvent{Completed: completed, Total: total, File: files[r.position]}
		switch {
		case r.result.err != nil:
			event.Type = ProgressFailed
			event.Error = r.result.err
		case r.result.doc == nil:
			event.Type = ProgressSkipped
			event.Reason = r.result.reason
		default:
			event.Type = ProgressProcessed
			event.Chunks = len(r.result.doc.Chunks)
		}
		p.notify(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// processFile turns one input file into a document. A nil document means
// the file is skipped for the returned reason.
func (p *Processor) processFile(ctx context.Context, rel string) fileResult {
	raw, err := p.Source.ReadFile(ctx, rel)
	if err != nil {
		return fileResult{reason: err.Error(), err: err}
	}

	var meta docprep.Metadata
	var body string
	if isHTML(rel) {
		meta, body, err = p.importHTML(raw)
		if err != nil {
			return fileResult{reason: err.Error(), err: err}
		}
	} else {
		meta, body = p.Parser.Parse(raw)
	}

	cleaned := p.Cleaner.Clean(body, true)
	if strings.TrimSpace(cleaned) == "" {
		return fileResult{reason: "no content after cleaning"}
	}

	filePath := p.Source.Path(rel)
	chunks := p.Structurer.Structure(cleaned, meta)
	for _, c := range chunks {
		c.ParentDoc = filePath
	}

	return fileResult{doc: &docprep.ProcessedDocument{
		FilePath:     filePath,
		RelPath:      filepath.ToSlash(rel),
		SourceFolder: SourceFolder(rel),
		OriginalURL:  meta.URL(),
		Title:        documentTitle(meta, chunks, rel),
		Chunks:       chunks,
		Topics:       []string{},
		Dependencies: []string{},
	}}
}

func (p *Processor) htmlEnabled() bool {
	return p.Extractor != nil && p.Converter != nil
}

func (p *Processor) importHTML(raw string) (docprep.Metadata, string, error) {
	extracted, err := p.Extractor.Extract(raw)
	if err != nil {
		return nil, "", fmt.Errorf("extract: %w", err)
	}
	body, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, "", fmt.Errorf("convert: %w", err)
	}

	meta := docprep.Metadata{}
	if extracted.Title != "" {
		meta[docprep.MetaTitle] = extracted.Title
	}
	if extracted.URL != "" {
		meta[docprep.MetaURL] = extracted.URL
	}
	return meta, body, nil
}

// classify returns a known category, using the default when the classifier
// fails or answers outside the known set.
func (p *Processor) classify(ctx context.Context, doc *docprep.ProcessedDocument) docprep.Category {
	category, err := p.Classifier.Classify(ctx, doc)
	if err != nil || !category.Valid() {
		return docprep.DefaultCategory
	}
	return category
}

// save writes every document and the index, returning the summary.
func (p *Processor) save(ctx context.Context, ordered []*docprep.ProcessedDocument, flatten bool) (*docprep.Summary, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	summary := &docprep.Summary{
		ProcessedAt:    now(),
		TotalDocuments: len(ordered),
		Categories:     make(map[docprep.Category]int),
		Documents:      make([]docprep.DocumentSummary, 0, len(ordered)),
	}

	for i, doc := range ordered {
		name := OutputNameFor(i, doc.RelPath, flatten)
		file, err := p.Store.SaveDocument(ctx, name, doc)
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", doc.FilePath, err)
		}

		summary.TotalChunks += len(doc.Chunks)
		summary.Categories[doc.Category]++
		summary.Documents = append(summary.Documents, docprep.DocumentSummary{
			Index:        i,
			File:         file,
			Original:     doc.FilePath,
			Title:        doc.Title,
			Category:     doc.Category,
			Chunks:       len(doc.Chunks),
			Complexity:   doc.ComplexityScore,
			Dependencies: doc.Dependencies,
			SourceFolder: doc.SourceFolder,
		})
	}

	entries := docprep.BuildIndex(ordered)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ChunkID
	}
	summary.DuplicateChunkIDs = bloom.CountDuplicates(ids, duplicateFPRate)

	if err := p.Store.SaveIndex(ctx, entries); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}
	return summary, nil
}

func (p *Processor) notify(event ProgressEvent) {
	if p.Progress != nil {
		p.Progress(event)
	}
}

// OutputNameFor derives the output location of the document at position
// index. Flattened names encode the source subdirectories joined by
// underscores; otherwise the subdirectories are kept as Dir.
func OutputNameFor(index int, rel string, flatten bool) docprep.OutputName {
	rel = filepath.ToSlash(rel)
	dir, base := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")
	stem := strings.TrimSuffix(base, path.Ext(base))

	if dir == "" {
		return docprep.OutputName{Stem: fmt.Sprintf("%04d_%s", index, stem)}
	}
	if flatten {
		prefix := strings.ReplaceAll(dir, "/", "_")
		return docprep.OutputName{Stem: fmt.Sprintf("%04d_%s_%s", index, prefix, stem)}
	}
	return docprep.OutputName{Dir: dir, Stem: fmt.Sprintf("%04d_%s", index, stem)}
}

// SourceFolder returns the slash-separated directory of rel, or
// docprep.RootFolder for files at the top level.
func SourceFolder(rel string) string {
	dir := path.Dir(filepath.ToSlash(rel))
	if dir == "." {
		return docprep.RootFolder
	}
	return dir
}

// documentTitle prefers the frontmatter title, then the first level-1
// section title, then the file stem.
func documentTitle(meta docprep.Metadata, chunks []*docprep.Chunk, rel string) string {
	if title := strings.TrimSpace(meta.Title()); title != "" {
		return title
	}
	for _, c := range chunks {
		if c.Metadata.SectionLevel == 1 {
			return c.Metadata.SectionTitle
		}
	}
	base := path.Base(filepath.ToSlash(rel))
	return strings.TrimSuffix(base, path.Ext(base))
}

func isHTML(rel string) bool {
	ext := strings.ToLower(path.Ext(rel))
	for _, e := range HTMLExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
