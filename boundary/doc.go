/*
Package boundary exposes registered annotation engines to callers that
address text in UTF-16 code units.

Engines work in codepoint offsets; managed-side callers (and the wire
encoding this package defines) work in UTF-16 code units. The [Service]
translates spans on the way in and on the way out, so neither side ever
sees the other's index space.

Results crossing the boundary are encoded with an explicit, versioned
binary contract (see codec.go) instead of ad-hoc object construction.
Optional fields — the datetime interpretation, the knowledge payload — are
flagged explicitly in the encoding; there is no null.
*/
package boundary

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// ErrUnresolvedSpan is returned when an inbound span does not map onto the
// given text. An unresolved endpoint is never forwarded to an engine as if
// it were a legitimate offset.
var ErrUnresolvedSpan = errors.New("span does not resolve in text")

// tracer returns a trace sink for the boundary package namespace.
func tracer() tracing.Trace {
	return tracing.Select("annotext.boundary")
}
