package ucd

import (
	"strconv"
	"strings"
)

// ParseCode parses a hexadecimal codepoint such as "1F600". The field name
// is included in the error to identify the offending input.
func ParseCode(s, field string) (rune, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, Errorf(EINVALID, "parsing %s: %q is not a valid code", field, s)
	}
	return rune(v), nil
}

// ParseRange parses an inclusive codepoint range in the "XXXX..YYYY" form
// used throughout the UCD data files.
func ParseRange(s, field string) (lo, hi rune, err error) {
	const sep = ".."
	i := strings.Index(s, sep)
	if i < 0 {
		return 0, 0, Errorf(EINVALID, "parsing %s: %q is not a valid range", field, s)
	}
	lo, err = ParseCode(s[:i], field+" start")
	if err != nil {
		return 0, 0, err
	}
	hi, err = ParseCode(s[i+len(sep):], field+" end")
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
