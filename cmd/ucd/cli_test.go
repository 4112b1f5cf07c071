package main_test

import (
	"context"
	"io"

	"github.com/fwojciec/ucd"
	main "github.com/fwojciec/ucd/cmd/ucd"
)

// newTestDeps wires Dependencies to the given mocks.
func newTestDeps(stdout, stderr io.Writer, store ucd.DataStore, index ucd.IndexService) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		NewStore: func(string) ucd.DataStore {
			return store
		},
		OpenIndex: func(string) (ucd.IndexService, func() error, error) {
			return index, func() error { return nil }, nil
		},
	}
}
