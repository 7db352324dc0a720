/*
Package span converts text offsets between index spaces.

Text positions can be counted in Unicode codepoints (one unit per scalar
value) or in UTF-16 code units (one unit per scalar value, two for scalar
values beyond the Basic Multilingual Plane, which encode as a surrogate
pair). The package API is centered around [ToUTF16] and [ToCodepoints]:
  - callers provide UTF-8 text and a [Span] of boundary offsets,
  - the converter maps both endpoints into the other index space in one
    linear scan,
  - endpoints that do not land on any scan boundary come back as [Unset].

Clients converting many spans against the same text may build an
[OffsetMap] once and query it instead of rescanning.
*/
package span

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the span package namespace.
func tracer() tracing.Trace {
	return tracing.Select("annotext.span")
}
