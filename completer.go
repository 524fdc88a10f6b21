package docprep

import "context"

// CompletionRequest is a single-turn text completion.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Completer provides text completion from a language model.
type Completer interface {
	// Complete returns the model's text response.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
