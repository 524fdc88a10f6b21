// Package gemini provides a docprep.Completer backed by Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/docprep"
	"google.golang.org/genai"
)

// DefaultModel is used when NewCompleter is given an empty model name.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements docprep.Completer at compile time.
var _ docprep.Completer = (*Completer)(nil)

// Completer implements docprep.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends a single-turn request and returns the response text.
func (c *Completer) Complete(ctx context.Context, req docprep.CompletionRequest) (string, error) {
	if req.Prompt == "" {
		return "", docprep.Errorf(docprep.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docprep.Errorf(docprep.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a request.
// MaxTokens is not forwarded: thinking models spend output tokens before
// answering, and a small cap truncates the answer to nothing.
func BuildConfig(req docprep.CompletionRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	return config
}
