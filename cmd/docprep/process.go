package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/fs"
	"github.com/fwojciec/docprep/gemini"
	"github.com/fwojciec/docprep/gonum"
	"github.com/fwojciec/docprep/goquery"
	"github.com/fwojciec/docprep/htmltomarkdown"
	"github.com/fwojciec/docprep/markdown"
	"github.com/fwojciec/docprep/openai"
	"github.com/fwojciec/docprep/pipeline"
	"github.com/fwojciec/docprep/readability"
	docslog "github.com/fwojciec/docprep/slog"
	"github.com/fwojciec/docprep/sqlite"
	"github.com/fwojciec/docprep/trafilatura"
	"github.com/fwojciec/docprep/yaml"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	config := docprep.ChunkConfig{Size: c.ChunkSize, Overlap: c.ChunkOverlap}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := fs.CheckSeparate(c.Input, c.Output); err != nil {
		return err
	}

	cleaning, categories, err := c.loadRules()
	if err != nil {
		return err
	}

	cleaner, err := markdown.NewCleaner(cleaning)
	if err != nil {
		return err
	}
	structurer, err := markdown.NewStructurer(config)
	if err != nil {
		return err
	}

	classifier, err := c.classifier(deps, categories)
	if err != nil {
		return err
	}

	sorter := gonum.NewSorter()
	sorter.OnCycle = docslog.CycleLogger(deps.Logger)

	p := &pipeline.Processor{
		Source:      fs.NewSource(c.Input),
		Parser:      yaml.NewFrontmatterParser(),
		Cleaner:     cleaner,
		Structurer:  structurer,
		Classifier:  docslog.NewLoggingClassifier(classifier, deps.Logger),
		Sorter:      sorter,
		Extractor:   htmlExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Concurrency: c.Concurrency,
		Progress:    docslog.ProgressLogger(deps.Logger),
		Now:         deps.Now,
	}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		index := sqlite.NewIndexStore(db)
		if deps.Now != nil {
			index.Now = deps.Now
		}
		p.Index = index
	}

	store, err := fs.NewOutputStore(c.Output)
	if err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}
	p.Store = store

	summary, err := p.ProcessAll(deps.Ctx, pipeline.Options{
		Recursive: c.Recursive,
		Flatten:   c.Flatten,
	})
	if err != nil {
		return err
	}

	printSummary(deps, summary, c.Output)
	return nil
}

// loadRules returns the default rules merged with the rules file, if any.
func (c *ProcessCmd) loadRules() ([]docprep.CleaningRule, docprep.CategoryRules, error) {
	cleaning := docprep.DefaultCleaningRules()
	categories := docprep.DefaultCategoryRules()
	if c.Rules == "" {
		return cleaning, categories, nil
	}

	f, err := os.Open(c.Rules)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	set, err := yaml.LoadRuleSet(f)
	if err != nil {
		return nil, nil, err
	}
	cleaning = append(cleaning, set.Cleaning...)
	if len(set.Categories) > 0 {
		categories = set.Categories
	}
	return cleaning, categories, nil
}

// classifier returns the keyword classifier, wrapped by a model-backed one
// when --use-llm is set and a provider is configured.
func (c *ProcessCmd) classifier(deps *Dependencies, categories docprep.CategoryRules) (docprep.Classifier, error) {
	rules := docprep.NewRuleClassifier(categories)
	if !c.UseLLM {
		return rules, nil
	}

	completer, err := c.completer(deps)
	if err != nil {
		return nil, err
	}
	if completer == nil {
		deps.Logger.Warn("no API key for provider, using keyword classification", "provider", c.Provider)
		return rules, nil
	}

	external := pipeline.NewExternalClassifier(docslog.NewLoggingCompleter(completer, deps.Logger), rules)
	if c.Rate > 0 {
		external.Limiter = rate.NewLimiter(rate.Limit(c.Rate), 1)
	}
	return external, nil
}

// completer returns nil without error when the provider has no API key.
func (c *ProcessCmd) completer(deps *Dependencies) (docprep.Completer, error) {
	if deps.Completer != nil {
		return deps.Completer, nil
	}

	switch c.Provider {
	case "gemini":
		if c.GeminiKey == "" {
			return nil, nil
		}
		client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  c.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, c.Model), nil
	default:
		if c.OpenAIKey == "" {
			return nil, nil
		}
		return openai.NewCompleter(openai.NewClient(c.OpenAIKey, c.OpenAIURL), c.Model), nil
	}
}

// htmlExtractor strips framework chrome, then extracts with trafilatura and
// falls back to readability.
func htmlExtractor() docprep.Extractor {
	extractor := trafilatura.NewExtractor()
	extractor.Fallback = readability.NewExtractor()
	return goquery.NewChromeStripper(extractor)
}

func printSummary(deps *Dependencies, summary *docprep.Summary, output string) {
	fmt.Fprintf(deps.Stdout, "Processed %d documents (%d chunks) into %s\n",
		summary.TotalDocuments, summary.TotalChunks, output)
	for _, category := range docprep.Categories() {
		if n := summary.Categories[category]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %-16s %d\n", category, n)
		}
	}
	if summary.DuplicateChunkIDs > 0 {
		fmt.Fprintf(deps.Stdout, "Duplicate chunk ids: %d\n", summary.DuplicateChunkIDs)
	}
	if len(summary.Skipped) > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d files:\n", len(summary.Skipped))
		for _, s := range summary.Skipped {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", s.File, s.Reason)
		}
	}
}
