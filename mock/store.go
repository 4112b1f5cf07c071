package mock

import "github.com/fwojciec/ucd"

var _ ucd.DataStore = (*DataStore)(nil)

// DataStore is a mock implementation of ucd.DataStore.
type DataStore struct {
	DirFn         func() string
	HasSentinelFn func() bool
	EnsureFn      func() error
	ReadFileFn    func(name string) (*ucd.File, error)
}

func (s *DataStore) Dir() string {
	return s.DirFn()
}

func (s *DataStore) HasSentinel() bool {
	return s.HasSentinelFn()
}

func (s *DataStore) Ensure() error {
	if s.EnsureFn == nil {
		return nil
	}
	return s.EnsureFn()
}

func (s *DataStore) ReadFile(name string) (*ucd.File, error) {
	return s.ReadFileFn(name)
}
