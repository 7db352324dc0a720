package engine

import (
	"fmt"

	"github.com/annotext/annotext/span"
)

// Granularity is the precision of a datetime interpretation.
type Granularity int

const (
	GranularityUnknown Granularity = iota - 1
	GranularityYear
	GranularityMonth
	GranularityWeek
	GranularityDay
	GranularityHour
	GranularityMinute
	GranularitySecond
)

// String returns a human-readable representation of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityYear:
		return "year"
	case GranularityMonth:
		return "month"
	case GranularityWeek:
		return "week"
	case GranularityDay:
		return "day"
	case GranularityHour:
		return "hour"
	case GranularityMinute:
		return "minute"
	case GranularitySecond:
		return "second"
	default:
		return "unknown"
	}
}

// Datetime is an optional datetime interpretation of a classified span.
// The zero value is "not set"; use [DatetimeAt] to construct a set value.
type Datetime struct {
	TimeMs      int64 // ms since Unix epoch, UTC
	Granularity Granularity

	set bool
}

// DatetimeAt returns a set datetime value.
func DatetimeAt(timeMs int64, g Granularity) Datetime {
	return Datetime{TimeMs: timeMs, Granularity: g, set: true}
}

// IsSet reports whether the datetime carries a value.
func (d Datetime) IsSet() bool {
	return d.set
}

func (d Datetime) String() string {
	if !d.set {
		return "<unset>"
	}
	return fmt.Sprintf("%d@%s", d.TimeMs, d.Granularity)
}

// Classification is one engine verdict about a selected substring.
type Classification struct {
	Collection string  // entity collection, e.g. "address", "phone"
	Score      float32 // higher is more confident

	// Datetime is set for datetime collections only.
	Datetime Datetime

	// KnowledgePayload is an opaque serialized knowledge-engine result;
	// empty when the knowledge engine did not contribute.
	KnowledgePayload []byte
}

// AnnotatedSpan is one detected entity: where it is (codepoint offsets) and
// how the engine classified it, best match first.
type AnnotatedSpan struct {
	Span            span.Span
	Classifications []Classification
}
