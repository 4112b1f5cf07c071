package mock

import (
	"context"

	"github.com/fwojciec/ucd"
)

var _ ucd.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of ucd.IndexService.
type IndexService struct {
	LoadFn                func(ctx context.Context, files []*ucd.File) (*ucd.IndexStats, error)
	FindCodePointByCodeFn func(ctx context.Context, code rune) (*ucd.CodePoint, error)
	FindCodePointsFn      func(ctx context.Context, filter ucd.CodePointFilter) ([]*ucd.CodePoint, error)
	FindBlocksFn          func(ctx context.Context) ([]*ucd.Block, error)
	StatsFn               func(ctx context.Context) (*ucd.IndexStats, error)
}

func (s *IndexService) Load(ctx context.Context, files []*ucd.File) (*ucd.IndexStats, error) {
	return s.LoadFn(ctx, files)
}

func (s *IndexService) FindCodePointByCode(ctx context.Context, code rune) (*ucd.CodePoint, error) {
	return s.FindCodePointByCodeFn(ctx, code)
}

func (s *IndexService) FindCodePoints(ctx context.Context, filter ucd.CodePointFilter) ([]*ucd.CodePoint, error) {
	return s.FindCodePointsFn(ctx, filter)
}

func (s *IndexService) FindBlocks(ctx context.Context) ([]*ucd.Block, error) {
	return s.FindBlocksFn(ctx)
}

func (s *IndexService) Stats(ctx context.Context) (*ucd.IndexStats, error) {
	return s.StatsFn(ctx)
}
