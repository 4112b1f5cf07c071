package ucd

import "strings"

// ParseVersion extracts the UCD version from the contents of ReadMe.txt.
// It returns the first dotted number following a "Version " prefix, e.g.
// "15.1.0". Returns ENOTFOUND when no version statement is present.
func ParseVersion(readme string) (string, error) {
	const prefix = "Version "
	rest := readme
	for {
		i := strings.Index(rest, prefix)
		if i < 0 {
			return "", Errorf(ENOTFOUND, "no version statement found")
		}
		rest = rest[i+len(prefix):]
		if len(rest) == 0 || rest[0] < '0' || rest[0] > '9' {
			continue
		}
		end := strings.IndexFunc(rest, func(r rune) bool {
			return r != '.' && (r < '0' || r > '9')
		})
		if end < 0 {
			end = len(rest)
		}
		// A version statement can end a sentence; its period is not
		// part of the version.
		return strings.TrimRight(rest[:end], "."), nil
	}
}
