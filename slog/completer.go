package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docprep"
)

// Ensure LoggingCompleter implements docprep.Completer at compile time.
var _ docprep.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   docprep.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next docprep.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs sizes, not contents.
func (c *LoggingCompleter) Complete(ctx context.Context, req docprep.CompletionRequest) (answer string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("completion",
			"prompt_bytes", len(req.Prompt),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
