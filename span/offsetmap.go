package span

// OffsetMap is a precomputed two-way offset table for one text. It answers
// the same queries as [ToUTF16] and [ToCodepoints], but after a single
// construction scan each conversion is O(1) instead of O(text length).
//
// The map is immutable after construction and safe for concurrent use.
type OffsetMap struct {
	cpToCU []int // indexed by codepoint offset, 0..CodepointLen
	cuToCP []int // indexed by UTF-16 offset, 0..UTF16Len; Unset mid-pair
}

// NewOffsetMap scans text once and records every boundary position in both
// index spaces.
func NewOffsetMap(text string) *OffsetMap {
	m := &OffsetMap{
		cpToCU: make([]int, 0, len(text)+1),
	}
	cu := 0
	for _, r := range text {
		m.cpToCU = append(m.cpToCU, cu)
		cu++
		if r > 0xFFFF {
			cu++
		}
	}
	m.cpToCU = append(m.cpToCU, cu)

	// UTF-16 offsets inside a surrogate pair stay Unset: they are not
	// boundaries and never resolve.
	m.cuToCP = make([]int, cu+1)
	for i := range m.cuToCP {
		m.cuToCP[i] = Unset
	}
	for cpOff, cuOff := range m.cpToCU {
		m.cuToCP[cuOff] = cpOff
	}

	tracer().Debugf("offset map: %d codepoints, %d UTF-16 units",
		m.CodepointLen(), m.UTF16Len())
	return m
}

// CodepointLen returns the text length in codepoints.
func (m *OffsetMap) CodepointLen() int {
	return len(m.cpToCU) - 1
}

// UTF16Len returns the text length in UTF-16 code units.
func (m *OffsetMap) UTF16Len() int {
	return len(m.cuToCP) - 1
}

// ToUTF16 maps a span of codepoint offsets to UTF-16 code-unit offsets.
// Agrees with the package-level [ToUTF16] on every input.
func (m *OffsetMap) ToUTF16(sp Span) Span {
	return Span{
		Start: lookup(m.cpToCU, sp.Start),
		End:   lookup(m.cpToCU, sp.End),
	}
}

// ToCodepoints maps a span of UTF-16 code-unit offsets to codepoint offsets.
// Agrees with the package-level [ToCodepoints] on every input.
func (m *OffsetMap) ToCodepoints(sp Span) Span {
	return Span{
		Start: lookup(m.cuToCP, sp.Start),
		End:   lookup(m.cuToCP, sp.End),
	}
}

func lookup(table []int, off int) int {
	if off < 0 || off >= len(table) {
		return Unset
	}
	return table[off]
}
