package engine

import (
	"strings"

	"golang.org/x/text/language"
)

// SelectionOptions parameterize [Engine.SuggestSelection].
// A nil options pointer means defaults throughout this package.
type SelectionOptions struct {
	// Locales is a comma-separated list of BCP-47 tags, in preference order.
	Locales string
}

// ClassificationOptions parameterize [Engine.ClassifyText].
type ClassificationOptions struct {
	Locales           string // comma-separated BCP-47 tags
	ReferenceTimezone string // IANA name, e.g. "Europe/Zurich"
	ReferenceTimeMs   int64  // "now" for relative datetimes, ms since epoch
}

// AnnotationOptions parameterize [Engine.Annotate].
type AnnotationOptions struct {
	Locales           string
	ReferenceTimezone string
	ReferenceTimeMs   int64
}

// LocaleTags parses the Locales field. Malformed entries are skipped.
func (o *SelectionOptions) LocaleTags() []language.Tag {
	if o == nil {
		return nil
	}
	return parseLocales(o.Locales)
}

// LocaleTags parses the Locales field. Malformed entries are skipped.
func (o *ClassificationOptions) LocaleTags() []language.Tag {
	if o == nil {
		return nil
	}
	return parseLocales(o.Locales)
}

// LocaleTags parses the Locales field. Malformed entries are skipped.
func (o *AnnotationOptions) LocaleTags() []language.Tag {
	if o == nil {
		return nil
	}
	return parseLocales(o.Locales)
}

func parseLocales(locales string) []language.Tag {
	var tags []language.Tag
	for _, entry := range strings.Split(locales, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tag, err := language.Parse(entry)
		if err != nil {
			tracer().Infof("skipping malformed locale entry %q", entry)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
