package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ucd"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	code, err := ucd.ParseCode(strings.TrimPrefix(c.Code, "U+"), "codepoint")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	index, closeIndex, err := deps.OpenIndex(c.DB)
	if err != nil {
		return err
	}
	defer closeIndex()

	cp, err := index.FindCodePointByCode(deps.Ctx, code)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ucd.ErrorMessage(err))
		return err
	}

	printCodePoint(deps, cp)
	return nil
}

func printCodePoint(deps *Dependencies, cp *ucd.CodePoint) {
	fmt.Fprintf(deps.Stdout, "U+%04X %s\n", cp.Code, cp.Name)
	fmt.Fprintf(deps.Stdout, "  category:  %s\n", cp.Category)
	fmt.Fprintf(deps.Stdout, "  bidi:      %s\n", cp.Bidi)
	if cp.Combining != 0 {
		fmt.Fprintf(deps.Stdout, "  combining: %d\n", cp.Combining)
	}
	if cp.Decomposition != nil {
		fmt.Fprintf(deps.Stdout, "  decomp:    %s\n", cp.Decomposition)
	}
	if cp.Decimal >= 0 {
		fmt.Fprintf(deps.Stdout, "  decimal:   %d\n", cp.Decimal)
	}
	if cp.Digit >= 0 {
		fmt.Fprintf(deps.Stdout, "  digit:     %d\n", cp.Digit)
	}
	if cp.Numeric.Valid {
		fmt.Fprintf(deps.Stdout, "  numeric:   %s\n", cp.Numeric)
	}
	if cp.Mirrored {
		fmt.Fprintf(deps.Stdout, "  mirrored:  yes\n")
	}
	if cp.OldName != "" {
		fmt.Fprintf(deps.Stdout, "  1.0 name:  %s\n", cp.OldName)
	}
	if cp.Upper != 0 {
		fmt.Fprintf(deps.Stdout, "  uppercase: U+%04X\n", cp.Upper)
	}
	if cp.Lower != 0 {
		fmt.Fprintf(deps.Stdout, "  lowercase: U+%04X\n", cp.Lower)
	}
	if cp.Title != 0 {
		fmt.Fprintf(deps.Stdout, "  titlecase: U+%04X\n", cp.Title)
	}
}
