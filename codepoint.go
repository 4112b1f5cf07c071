package ucd

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the Unicode general category of a character, e.g. "Lu" for
// uppercase letters. These are a useful breakdown into various "character
// types" which can be used as a default categorization in implementations.
type Category string

// General category values.
const (
	CategoryCn Category = "Cn" // Other, not assigned
	CategoryLu Category = "Lu" // Letter, uppercase
	CategoryLl Category = "Ll" // Letter, lowercase
	CategoryLt Category = "Lt" // Letter, titlecase
	CategoryLm Category = "Lm" // Letter, modifier
	CategoryLo Category = "Lo" // Letter, other
	CategoryMn Category = "Mn" // Mark, nonspacing
	CategoryMc Category = "Mc" // Mark, spacing combining
	CategoryMe Category = "Me" // Mark, enclosing
	CategoryNd Category = "Nd" // Number, decimal digit
	CategoryNl Category = "Nl" // Number, letter
	CategoryNo Category = "No" // Number, other
	CategoryPc Category = "Pc" // Punctuation, connector
	CategoryPd Category = "Pd" // Punctuation, dash
	CategoryPs Category = "Ps" // Punctuation, open
	CategoryPe Category = "Pe" // Punctuation, close
	CategoryPi Category = "Pi" // Punctuation, initial quote
	CategoryPf Category = "Pf" // Punctuation, final quote
	CategoryPo Category = "Po" // Punctuation, other
	CategorySm Category = "Sm" // Symbol, math
	CategorySc Category = "Sc" // Symbol, currency
	CategorySk Category = "Sk" // Symbol, modifier
	CategorySo Category = "So" // Symbol, other
	CategoryZs Category = "Zs" // Separator, space
	CategoryZl Category = "Zl" // Separator, line
	CategoryZp Category = "Zp" // Separator, paragraph
	CategoryCc Category = "Cc" // Other, control
	CategoryCf Category = "Cf" // Other, format
	CategoryCs Category = "Cs" // Other, surrogate
	CategoryCo Category = "Co" // Other, private use
)

var categories = map[Category]bool{
	CategoryCn: true, CategoryLu: true, CategoryLl: true, CategoryLt: true,
	CategoryLm: true, CategoryLo: true, CategoryMn: true, CategoryMc: true,
	CategoryMe: true, CategoryNd: true, CategoryNl: true, CategoryNo: true,
	CategoryPc: true, CategoryPd: true, CategoryPs: true, CategoryPe: true,
	CategoryPi: true, CategoryPf: true, CategoryPo: true, CategorySm: true,
	CategorySc: true, CategorySk: true, CategorySo: true, CategoryZs: true,
	CategoryZl: true, CategoryZp: true, CategoryCc: true, CategoryCf: true,
	CategoryCs: true, CategoryCo: true,
}

// Valid reports whether c is one of the known general categories.
func (c Category) Valid() bool { return categories[c] }

// ParseCategory validates a general category field.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", Errorf(EINVALID, "parsing category: %q is not a valid general category", s)
	}
	return c, nil
}

// Bidi is the bidirectional category of a character, as required by the
// Bidirectional Behavior Algorithm in the Unicode Standard.
//
// See https://www.unicode.org/reports/tr9/
type Bidi string

// Bidirectional category values.
const (
	BidiL   Bidi = "L"   // Left-to-Right
	BidiR   Bidi = "R"   // Right-to-Left
	BidiAL  Bidi = "AL"  // Right-to-Left Arabic
	BidiEN  Bidi = "EN"  // European Number
	BidiES  Bidi = "ES"  // European Number Separator
	BidiET  Bidi = "ET"  // European Number Terminator
	BidiAN  Bidi = "AN"  // Arabic Number
	BidiCS  Bidi = "CS"  // Common Number Separator
	BidiNSM Bidi = "NSM" // Nonspacing Mark
	BidiBN  Bidi = "BN"  // Boundary Neutral
	BidiB   Bidi = "B"   // Paragraph Separator
	BidiS   Bidi = "S"   // Segment Separator
	BidiWS  Bidi = "WS"  // Whitespace
	BidiON  Bidi = "ON"  // Other Neutrals
	BidiLRE Bidi = "LRE" // Left-to-Right Embedding
	BidiLRO Bidi = "LRO" // Left-to-Right Override
	BidiRLE Bidi = "RLE" // Right-to-Left Embedding
	BidiRLO Bidi = "RLO" // Right-to-Left Override
	BidiPDF Bidi = "PDF" // Pop Directional Format
	BidiLRI Bidi = "LRI" // Left-to-Right Isolate
	BidiRLI Bidi = "RLI" // Right-to-Left Isolate
	BidiFSI Bidi = "FSI" // First Strong Isolate
	BidiPDI Bidi = "PDI" // Pop Directional Isolate
)

var bidiClasses = map[Bidi]bool{
	BidiL: true, BidiR: true, BidiAL: true, BidiEN: true, BidiES: true,
	BidiET: true, BidiAN: true, BidiCS: true, BidiNSM: true, BidiBN: true,
	BidiB: true, BidiS: true, BidiWS: true, BidiON: true, BidiLRE: true,
	BidiLRO: true, BidiRLE: true, BidiRLO: true, BidiPDF: true,
	BidiLRI: true, BidiRLI: true, BidiFSI: true, BidiPDI: true,
}

// Valid reports whether b is one of the known bidirectional categories.
func (b Bidi) Valid() bool { return bidiClasses[b] }

// ParseBidi validates a bidirectional category field.
func ParseBidi(s string) (Bidi, error) {
	b := Bidi(s)
	if !b.Valid() {
		return "", Errorf(EINVALID, "parsing bidi: %q is not a valid bidirectional category", s)
	}
	return b, nil
}

// Decomposition is the decomposition mapping for a character. A mapping
// without a tag is canonical; the presence of a formatting tag indicates a
// compatibility mapping.
type Decomposition struct {
	// Tag is the formatting tag without angle brackets, e.g. "font".
	// Empty for canonical mappings.
	Tag string

	Codes []rune
}

// Compatibility formatting tags as they appear in UnicodeData.txt.
var decompositionTags = map[string]bool{
	"font": true, "noBreak": true, "initial": true, "medial": true,
	"final": true, "isolated": true, "circle": true, "super": true,
	"sub": true, "vertical": true, "wide": true, "narrow": true,
	"small": true, "square": true, "fraction": true, "compat": true,
}

// ParseDecomposition parses the decomposition field. An empty field maps
// to nil (no decomposition).
func ParseDecomposition(s string) (*Decomposition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d := &Decomposition{}
	for i, part := range strings.Fields(s) {
		if strings.HasPrefix(part, "<") {
			if i != 0 || !strings.HasSuffix(part, ">") {
				return nil, Errorf(EINVALID, "parsing decomposition: misplaced tag in %q", s)
			}
			tag := part[1 : len(part)-1]
			if !decompositionTags[tag] {
				return nil, Errorf(EINVALID, "parsing decomposition: %q is not a valid tag", tag)
			}
			d.Tag = tag
			continue
		}
		code, err := ParseCode(part, "decomposition")
		if err != nil {
			return nil, err
		}
		d.Codes = append(d.Codes, code)
	}
	if len(d.Codes) == 0 {
		return nil, Errorf(EINVALID, "parsing decomposition: no codes in %q", s)
	}
	return d, nil
}

// String renders the mapping in its UnicodeData.txt field form.
func (d *Decomposition) String() string {
	var b strings.Builder
	if d.Tag != "" {
		b.WriteString("<" + d.Tag + ">")
	}
	for _, code := range d.Codes {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", code)
	}
	return b.String()
}

// Numeric is the numeric value property of a character. It covers plain
// integers as well as fractions such as U+2155 VULGAR FRACTION ONE FIFTH.
// The zero value means the character has no numeric value.
type Numeric struct {
	Valid bool
	Num   int64
	Den   int64 // 1 for integer values
}

// ParseNumeric parses the numeric value field. An empty field maps to the
// zero value.
func ParseNumeric(s string) (Numeric, error) {
	if s == "" {
		return Numeric{}, nil
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return Numeric{}, Errorf(EINVALID, "parsing numeric value: %q is not a valid fraction", s)
		}
		den, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil || den == 0 {
			return Numeric{}, Errorf(EINVALID, "parsing numeric value: %q is not a valid fraction", s)
		}
		return Numeric{Valid: true, Num: num, Den: den}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Numeric{}, Errorf(EINVALID, "parsing numeric value: %q is not a valid number", s)
	}
	return Numeric{Valid: true, Num: v, Den: 1}, nil
}

// String renders the value in its UnicodeData.txt field form.
func (n Numeric) String() string {
	switch {
	case !n.Valid:
		return ""
	case n.Den == 1:
		return strconv.FormatInt(n.Num, 10)
	default:
		return fmt.Sprintf("%d/%d", n.Num, n.Den)
	}
}

// CodePoint is a single record from UnicodeData.txt.
type CodePoint struct {
	// Code is the codepoint value. For range sentinel records this is the
	// start or end of a range of codepoints.
	Code rune

	// Name is the character name, or a range marker such as
	// "<CJK Ideograph, First>".
	Name string

	Category Category

	// Combining is the class used by the Canonical Ordering Algorithm.
	Combining uint8

	Bidi Bidi

	// Decomposition is nil when the character has no decomposition
	// mapping.
	Decomposition *Decomposition

	// Decimal is the decimal digit value, -1 when absent.
	Decimal int

	// Digit is the digit value for characters representing digits that
	// are not necessarily decimal, -1 when absent.
	Digit int

	Numeric Numeric

	// Mirrored is set for characters identified as mirrored in
	// bidirectional text.
	Mirrored bool

	// OldName is the Unicode 1.0 name when significantly different from
	// the current name.
	OldName string

	// Comment is the ISO 10646 comment field.
	Comment string

	// Simple case mappings; zero when the character has no mapping.
	// These are always one-to-one and context-free (SpecialCasing.txt is
	// out of scope).
	Upper rune
	Lower rune
	Title rune
}

// RangeFirst reports whether the record marks the start of a codepoint
// range, e.g. "<CJK Ideograph, First>".
func (p *CodePoint) RangeFirst() bool {
	return strings.HasPrefix(p.Name, "<") && strings.HasSuffix(p.Name, ", First>")
}

// RangeLast reports whether the record marks the end of a codepoint range.
func (p *CodePoint) RangeLast() bool {
	return strings.HasPrefix(p.Name, "<") && strings.HasSuffix(p.Name, ", Last>")
}

// ParseCodePoint parses a single UnicodeData.txt record of 15
// semicolon-separated fields.
func ParseCodePoint(line string) (CodePoint, error) {
	fields := strings.Split(line, ";")
	if len(fields) != 15 {
		return CodePoint{}, Errorf(EINVALID, "parsing unicode data: expected 15 fields, got %d in %q", len(fields), line)
	}

	var p CodePoint
	var err error

	if p.Code, err = ParseCode(fields[0], "code"); err != nil {
		return CodePoint{}, err
	}
	p.Name = fields[1]
	if p.Category, err = ParseCategory(fields[2]); err != nil {
		return CodePoint{}, err
	}
	combining, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return CodePoint{}, Errorf(EINVALID, "parsing combining class: %q is not a valid class", fields[3])
	}
	p.Combining = uint8(combining)
	if p.Bidi, err = ParseBidi(fields[4]); err != nil {
		return CodePoint{}, err
	}
	if p.Decomposition, err = ParseDecomposition(fields[5]); err != nil {
		return CodePoint{}, err
	}
	if p.Decimal, err = parseOptionalInt(fields[6], "decimal digit value"); err != nil {
		return CodePoint{}, err
	}
	if p.Digit, err = parseOptionalInt(fields[7], "digit value"); err != nil {
		return CodePoint{}, err
	}
	if p.Numeric, err = ParseNumeric(fields[8]); err != nil {
		return CodePoint{}, err
	}
	switch fields[9] {
	case "Y":
		p.Mirrored = true
	case "N":
		p.Mirrored = false
	default:
		return CodePoint{}, Errorf(EINVALID, "parsing mirrored: %q is not Y or N", fields[9])
	}
	p.OldName = fields[10]
	p.Comment = fields[11]
	if p.Upper, err = parseOptionalCode(fields[12], "uppercase mapping"); err != nil {
		return CodePoint{}, err
	}
	if p.Lower, err = parseOptionalCode(fields[13], "lowercase mapping"); err != nil {
		return CodePoint{}, err
	}
	if p.Title, err = parseOptionalCode(fields[14], "titlecase mapping"); err != nil {
		return CodePoint{}, err
	}

	return p, nil
}

// ParseUnicodeData parses every record of a UnicodeData.txt file. Range
// sentinel pairs are kept as records with their marker names.
func ParseUnicodeData(f *File) ([]CodePoint, error) {
	var points []CodePoint
	for _, line := range f.Lines() {
		p, err := ParseCodePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func parseOptionalInt(s, field string) (int, error) {
	if s == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, Errorf(EINVALID, "parsing %s: %q is not a valid number", field, s)
	}
	return v, nil
}

func parseOptionalCode(s, field string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	return ParseCode(s, field)
}
