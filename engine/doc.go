/*
Package engine defines the text-annotation engine facade and the handle
registry that owns engine instances.

An [Engine] evaluates annotation requests over UTF-8 text; all of its
offsets are codepoint offsets (see the span package for conversion to and
from UTF-16 code units). Engine implementations live outside this module —
model loading, classification and datetime parsing are the engine's
business. This package only fixes the contract: operations, option structs,
result structs and instance lifetime.

Instances are owned by a [Registry] and addressed through opaque [Handle]
values with explicit [Registry.Close] lifetime, never through raw pointers.
*/
package engine

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the engine package namespace.
func tracer() tracing.Trace {
	return tracing.Select("annotext.engine")
}
