// Package openai provides a docprep.Completer backed by the OpenAI chat API.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/docprep"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when NewCompleter is given an empty model name.
const DefaultModel = openai.GPT3Dot5Turbo

// Ensure Completer implements docprep.Completer at compile time.
var _ docprep.Completer = (*Completer)(nil)

// Completer implements docprep.Completer using chat completions.
type Completer struct {
	client *openai.Client
	model  string
}

// NewCompleter creates a new Completer.
func NewCompleter(client *openai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// NewClient returns a client for apiKey. A non-empty baseURL overrides the
// default endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(config)
}

// Complete sends a system and a user message and returns the first choice.
func (c *Completer) Complete(ctx context.Context, req docprep.CompletionRequest) (string, error) {
	if req.Prompt == "" {
		return "", docprep.Errorf(docprep.EINVALID, "prompt required")
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", docprep.Errorf(docprep.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
