package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the ranges command.
func (c *RangesCmd) Run(deps *Dependencies) error {
	store := deps.NewStore(c.Root)

	f, err := store.ReadFile(ucd.UnicodeDataFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	points, err := ucd.ParseUnicodeData(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	m := ucd.CategoryRanges(points)
	for i := 0; i < m.Len(); i++ {
		r := m.At(i)
		fmt.Fprintf(deps.Stdout, "%04X..%04X; %s\n", r.First, r.Last, r.Value)
	}
	return nil
}
