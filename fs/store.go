// Package fs provides file-based storage for the local UCD data
// directory.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/ucd"
)

// DataDir returns the data directory for a repository root:
// <root>/data/ucd. The result depends only on root, never on the working
// directory of the caller.
func DataDir(root string) string {
	return filepath.Join(root, "data", "ucd")
}

// Ensure Store implements ucd.DataStore at compile time.
var _ ucd.DataStore = (*Store)(nil)

// Store is the local data directory holding the extracted UCD.
type Store struct {
	dir string
}

// NewStore creates a Store for the given repository root.
func NewStore(root string) *Store {
	return &Store{dir: DataDir(root)}
}

// Dir returns the path of the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// HasSentinel reports whether Index.txt exists directly inside the data
// directory.
func (s *Store) HasSentinel() bool {
	info, err := os.Stat(filepath.Join(s.dir, ucd.SentinelFile))
	return err == nil && info.Mode().IsRegular()
}

// Ensure creates the data directory and any missing parents.
func (s *Store) Ensure() error {
	return os.MkdirAll(s.dir, 0755)
}

// ReadFile reads a named data file from the directory.
func (s *Store) ReadFile(name string) (*ucd.File, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ucd.Errorf(ucd.ENOTFOUND, "data file %q not found in %s (run 'ucd fetch' first)", name, s.dir)
	}
	if err != nil {
		return nil, err
	}
	return &ucd.File{Name: name, Data: data}, nil
}
