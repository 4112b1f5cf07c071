package ucd

import "strings"

// Well-known file names inside the UCD data directory.
const (
	// SentinelFile signals that a previous fetch completed.
	SentinelFile = "Index.txt"

	// UnicodeDataFile holds the per-codepoint property records.
	UnicodeDataFile = "UnicodeData.txt"

	// BlocksFile holds the named codepoint block ranges.
	BlocksFile = "Blocks.txt"

	// ReadMeFile carries the UCD version statement.
	ReadMeFile = "ReadMe.txt"
)

// File is a single data file from the UCD.
type File struct {
	Name string
	Data []byte
}

// Lines returns the file's data lines: comments (everything after '#')
// are stripped, trailing whitespace is trimmed, and blank lines are
// dropped.
func (f *File) Lines() []string {
	var lines []string
	for line := range strings.Lines(string(f.Data)) {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
