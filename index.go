package ucd

import (
	"context"
	"time"
)

// FileLoad records one data file loaded into the index.
type FileLoad struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentHash string    `json:"contentHash"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// IndexStats summarizes the contents of the index.
type IndexStats struct {
	CodePoints int        `json:"codePoints"`
	Blocks     int        `json:"blocks"`
	Files      []FileLoad `json:"files"`
}

// CodePointFilter is a filter for IndexService.FindCodePoints.
type CodePointFilter struct {
	Category *Category `json:"category"`

	// Name matches a case-insensitive substring of the character name.
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// IndexService stores parsed UCD data for querying.
type IndexService interface {
	// Load parses the given data files and replaces the index contents
	// with the result. Currently UnicodeData.txt and Blocks.txt are
	// supported; other files are rejected with EINVALID.
	Load(ctx context.Context, files []*File) (*IndexStats, error)

	// FindCodePointByCode retrieves a single codepoint record.
	// Returns ENOTFOUND if the codepoint is not in the index.
	FindCodePointByCode(ctx context.Context, code rune) (*CodePoint, error)

	// FindCodePoints retrieves codepoint records matching the filter,
	// in ascending code order.
	FindCodePoints(ctx context.Context, filter CodePointFilter) ([]*CodePoint, error)

	// FindBlocks retrieves all block records in ascending order.
	FindBlocks(ctx context.Context) ([]*Block, error)

	// Stats reports what is currently loaded.
	Stats(ctx context.Context) (*IndexStats, error)
}
