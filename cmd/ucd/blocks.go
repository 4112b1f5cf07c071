package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the blocks command.
func (c *BlocksCmd) Run(deps *Dependencies) error {
	store := deps.NewStore(c.Root)

	f, err := store.ReadFile(ucd.BlocksFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	blocks, err := ucd.ParseBlocks(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	for _, b := range blocks {
		fmt.Fprintln(deps.Stdout, b)
	}
	return nil
}
