package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	store := deps.NewStore(c.Root)

	readme, err := store.ReadFile(ucd.ReadMeFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	version, err := ucd.ParseVersion(string(readme.Data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, version)
	return nil
}
