package mock

import (
	"context"

	"github.com/fwojciec/docprep"
)

var _ docprep.Source = (*Source)(nil)

// Source is a mock implementation of docprep.Source.
type Source struct {
	FilesFn    func(ctx context.Context, recursive bool, extensions []string) ([]string, error)
	ReadFileFn func(ctx context.Context, rel string) (string, error)
	PathFn     func(rel string) string
}

func (s *Source) Files(ctx context.Context, recursive bool, extensions []string) ([]string, error) {
	return s.FilesFn(ctx, recursive, extensions)
}

func (s *Source) ReadFile(ctx context.Context, rel string) (string, error) {
	return s.ReadFileFn(ctx, rel)
}

func (s *Source) Path(rel string) string {
	return s.PathFn(rel)
}
