package ucd

import (
	"fmt"
	"strings"
)

// Block is a named range of codepoints from Blocks.txt.
type Block struct {
	Lo   rune   `json:"lo"`
	Hi   rune   `json:"hi"`
	Name string `json:"name"`
}

// ParseBlock parses a single Blocks.txt data line, e.g.
// "0000..007F; Basic Latin".
func ParseBlock(line string) (Block, error) {
	i := strings.IndexByte(line, ';')
	if i < 0 {
		return Block{}, Errorf(EINVALID, "parsing block: missing field separator in %q", line)
	}
	lo, hi, err := ParseRange(strings.TrimSpace(line[:i]), "block range")
	if err != nil {
		return Block{}, err
	}
	return Block{Lo: lo, Hi: hi, Name: strings.TrimSpace(line[i+1:])}, nil
}

// ParseBlocks parses every data line of a Blocks.txt file.
func ParseBlocks(f *File) ([]Block, error) {
	var blocks []Block
	for _, line := range f.Lines() {
		b, err := ParseBlock(line)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// String renders the block in the same shape as the source file.
func (b Block) String() string {
	return fmt.Sprintf("%04X..%04X; %s", b.Lo, b.Hi, b.Name)
}
