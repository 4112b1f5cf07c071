package main

import (
	"fmt"

	"github.com/fwojciec/ucd"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := ucd.CodePointFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Category != "" {
		category, err := ucd.ParseCategory(c.Category)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
			return err
		}
		filter.Category = &category
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	index, closeIndex, err := deps.OpenIndex(c.DB)
	if err != nil {
		return err
	}
	defer closeIndex()

	points, err := index.FindCodePoints(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	for _, cp := range points {
		fmt.Fprintf(deps.Stdout, "U+%04X\t%s\t%s\n", cp.Code, cp.Category, cp.Name)
	}
	return nil
}
