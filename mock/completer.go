package mock

import (
	"context"

	"github.com/fwojciec/docprep"
)

var _ docprep.Completer = (*Completer)(nil)

// Completer is a mock implementation of docprep.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req docprep.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req docprep.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
