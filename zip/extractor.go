// Package zip provides an archive/zip-based implementation of
// ucd.Extractor that unpacks in-memory ZIP archives to disk.
package zip

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/ucd"
)

// Ensure Extractor implements ucd.Extractor at compile time.
var _ ucd.Extractor = (*Extractor)(nil)

// Extractor unpacks ZIP archives held fully in memory. The compressed
// bytes are never written to disk.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes every archive entry under dir, preserving the archive's
// relative paths and overwriting existing files. Entries that would
// resolve outside dir are rejected with EINVALID.
func (e *Extractor) Extract(ctx context.Context, archive []byte, dir string) (int, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return 0, ucd.Errorf(ucd.EINVALID, "not a valid ZIP archive: %s", err)
	}

	written := 0
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := extractFile(f, dir); err != nil {
			return written, err
		}
		if !f.FileInfo().IsDir() {
			written++
		}
	}
	return written, nil
}

func extractFile(f *zip.File, dir string) error {
	path := filepath.Join(dir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(path, filepath.Clean(dir)+string(os.PathSeparator)) {
		return ucd.Errorf(ucd.EINVALID, "archive entry %q escapes the target directory", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(path, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, rc); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
