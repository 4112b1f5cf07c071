package ucd

import "context"

// Extractor unpacks an in-memory archive into a directory.
type Extractor interface {
	// Extract writes every archive entry under dir, preserving the
	// archive's internal relative paths and overwriting files already
	// there. It returns the number of files written.
	Extract(ctx context.Context, archive []byte, dir string) (int, error)
}
