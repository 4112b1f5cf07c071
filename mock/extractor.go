package mock

import (
	"context"

	"github.com/fwojciec/ucd"
)

var _ ucd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ucd.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, archive []byte, dir string) (int, error)
}

func (e *Extractor) Extract(ctx context.Context, archive []byte, dir string) (int, error) {
	return e.ExtractFn(ctx, archive, dir)
}
