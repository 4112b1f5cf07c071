package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	store := deps.NewStore(c.Root)

	var files []*ucd.File
	for _, name := range []string{ucd.UnicodeDataFile, ucd.BlocksFile} {
		f, err := store.ReadFile(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
			return err
		}
		files = append(files, f)
	}

	index, closeIndex, err := deps.OpenIndex(c.DB)
	if err != nil {
		return err
	}
	defer closeIndex()

	stats, err := index.Load(deps.Ctx, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d codepoints and %d blocks into %s\n",
		stats.CodePoints, stats.Blocks, c.DB)
	return nil
}
