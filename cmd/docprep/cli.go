package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docprep"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Completer docprep.Completer
	Now       func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Process ProcessCmd `cmd:"" default:"withargs" help:"Process a directory of scraped documentation (default command)"`
	Search  SearchCmd  `cmd:"" help:"Search a processed index"`
	Docs    DocsCmd    `cmd:"" help:"List documents of a SQLite index in reading order"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Input  string `arg:"" help:"Directory of scraped markdown or HTML files"`
	Output string `arg:"" help:"Output directory (replaced on success)"`

	UseLLM    bool    `name:"use-llm" help:"Classify with a language model, falling back to keyword rules"`
	Provider  string  `enum:"openai,gemini" default:"openai" help:"Language model provider (${enum})"`
	Model     string  `help:"Model name (provider default if empty)"`
	OpenAIKey string  `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIURL string  `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible endpoint"`
	GeminiKey string  `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Rate      float64 `default:"1" help:"Maximum classification requests per second (0 for no limit)"`

	Recursive    bool   `default:"true" negatable:"" help:"Descend into subdirectories"`
	Flatten      bool   `default:"true" negatable:"" help:"Write all outputs into one directory"`
	ChunkSize    int    `default:"1000" help:"Chunk size in words"`
	ChunkOverlap int    `default:"200" help:"Chunk overlap in words"`
	Rules        string `type:"path" help:"YAML file with extra cleaning rules and category keywords"`
	DB           string `type:"path" env:"DOCPREP_DB" help:"Also write the index to this SQLite database"`
	Concurrency  int    `short:"c" default:"4" help:"Files processed in parallel"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Index    string   `arg:"" help:"Output directory of a previous run"`
	Query    []string `arg:"" help:"Search terms"`
	Limit    int      `short:"n" default:"10" help:"Maximum number of results"`
	Category string   `help:"Restrict results to one category"`
	DB       string   `type:"path" help:"Read the index from this SQLite database instead"`
	JSON     bool     `help:"Print results as JSON"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	DB       string `type:"path" env:"DOCPREP_DB" required:"" help:"SQLite database written by process --db"`
	Category string `help:"Restrict the listing to one category"`
}
