package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	store := deps.NewStore(c.Root)

	fmt.Fprintf(deps.Stdout, "Data directory: %s\n", store.Dir())

	if !store.HasSentinel() {
		fmt.Fprintln(deps.Stdout, "Status: not fetched (run 'ucd fetch')")
		return nil
	}
	fmt.Fprintln(deps.Stdout, "Status: fetched")

	readme, err := store.ReadFile(ucd.ReadMeFile)
	if err != nil {
		// The sentinel can exist without ReadMe.txt; not an error.
		if ucd.ErrorCode(err) == ucd.ENOTFOUND {
			return nil
		}
		return err
	}

	version, err := ucd.ParseVersion(string(readme.Data))
	if err != nil {
		if ucd.ErrorCode(err) == ucd.ENOTFOUND {
			return nil
		}
		return err
	}
	fmt.Fprintf(deps.Stdout, "UCD version: %s\n", version)

	return nil
}
