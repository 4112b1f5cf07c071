package ucd

import "sort"

// Range is a single entry in a RangeMap.
type Range[T any] struct {
	First rune
	Last  rune
	Value T
}

// RangeMap maps inclusive ranges of codepoints to values.
//
// The map maintains a sorted list of non-overlapping ranges. As range
// values are set and updated, input ranges are split into sub-ranges
// according to their unique values: Set calls the updater once per
// affected sub-range with its current value, or the zero value for
// sub-ranges not yet mapped.
//
// The zero value is an empty map ready for use.
type RangeMap[T any] struct {
	ranges []Range[T]
}

// Len returns the number of ranges in the map.
func (m *RangeMap[T]) Len() int { return len(m.ranges) }

// At returns the i-th range in ascending codepoint order.
func (m *RangeMap[T]) At(i int) Range[T] { return m.ranges[i] }

// Set applies the updater to the value of every sub-range of
// [first, last], splitting existing ranges on overlap.
//
// Set panics when last < first.
func (m *RangeMap[T]) Set(first, last rune, update func(*T)) {
	if last < first {
		panic("ucd: RangeMap invalid range (last < first)")
	}

	// Quadratic in the number of ranges, but this is only used when
	// compressing data files, not on any hot path.
	var added []Range[T]
	for i := range m.ranges {
		r := &m.ranges[i]

		if first < r.First {
			var value T
			update(&value)
			added = append(added, Range[T]{First: first, Last: min(r.First-1, last), Value: value})
			first = r.First
		}

		if first <= r.Last && last >= r.First {
			if first > r.First {
				head := *r
				head.Last = first - 1
				added = append(added, head)
				r.First = first
			}
			first = r.Last + 1

			if last < r.Last {
				tail := *r
				tail.First = last + 1
				added = append(added, tail)
				r.Last = last
			}

			update(&r.Value)
		}

		if first > last {
			break
		}
	}
	if first <= last {
		var value T
		update(&value)
		added = append(added, Range[T]{First: first, Last: last, Value: value})
	}

	m.ranges = append(m.ranges, added...)
	sort.Slice(m.ranges, func(i, j int) bool { return m.ranges[i].First < m.ranges[j].First })
}

// Coalesce merges adjacent ranges whose values compare equal under eq.
func (m *RangeMap[T]) Coalesce(eq func(a, b T) bool) {
	if len(m.ranges) < 2 {
		return
	}
	out := m.ranges[:1]
	for _, r := range m.ranges[1:] {
		prev := &out[len(out)-1]
		if prev.Last+1 == r.First && eq(prev.Value, r.Value) {
			prev.Last = r.Last
			continue
		}
		out = append(out, r)
	}
	m.ranges = out
}

// CategoryRanges compresses UnicodeData records into ranges of general
// categories. Range sentinel pairs (<..., First> / <..., Last>) expand to
// their full span; adjacent ranges with the same category are merged.
func CategoryRanges(points []CodePoint) *RangeMap[Category] {
	m := &RangeMap[Category]{}
	for i := 0; i < len(points); i++ {
		p := points[i]
		first, last := p.Code, p.Code
		if p.RangeFirst() && i+1 < len(points) && points[i+1].RangeLast() {
			last = points[i+1].Code
			i++
		}
		m.Set(first, last, func(c *Category) { *c = p.Category })
	}
	m.Coalesce(func(a, b Category) bool { return a == b })
	return m
}
