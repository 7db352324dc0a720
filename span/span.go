package span

import "fmt"

// Unset marks a span endpoint that could not be resolved into the target
// index space.
const Unset = -1

// Span is an ordered pair of boundary offsets into some index space.
// Offsets identify positions between characters, not characters themselves;
// the pair delimits a half-open range [Start, End).
//
// Which index space the offsets live in is a property of the call site, not
// of the value: the conversion functions in this package state the space of
// their inputs and outputs.
type Span struct {
	Start int
	End   int
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Unresolved returns a span with both endpoints set to [Unset].
func Unresolved() Span {
	return Span{Start: Unset, End: Unset}
}

// Resolved reports whether both endpoints carry real offsets, i.e. neither
// is [Unset].
func (s Span) Resolved() bool {
	return s.Start != Unset && s.End != Unset
}

// IsValid reports whether the span is resolved, non-negative and ordered
// (Start <= End).
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// IsEmpty reports whether the span covers zero units.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
