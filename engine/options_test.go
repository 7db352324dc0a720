package engine

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocaleTagsParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "annotext.engine")
	defer teardown()

	opts := &AnnotationOptions{Locales: "de-CH, en-US,ja"}
	tags := opts.LocaleTags()
	assert.Equal(t, []language.Tag{
		language.MustParse("de-CH"),
		language.MustParse("en-US"),
		language.Japanese,
	}, tags)
}

func TestLocaleTagsSkipsMalformedEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "annotext.engine")
	defer teardown()

	opts := &ClassificationOptions{Locales: "en, !!bogus!!, ,fr"}
	tags := opts.LocaleTags()
	assert.Len(t, tags, 2)
	assert.Equal(t, language.English, tags[0])
	assert.Equal(t, language.French, tags[1])
}

func TestLocaleTagsNilOptions(t *testing.T) {
	var sel *SelectionOptions
	assert.Nil(t, sel.LocaleTags())
}

func TestDatetimeOptional(t *testing.T) {
	var unset Datetime
	assert.False(t, unset.IsSet())
	assert.Equal(t, "<unset>", unset.String())

	dt := DatetimeAt(1724572800000, GranularityDay)
	assert.True(t, dt.IsSet())
	assert.Equal(t, GranularityDay, dt.Granularity)
}

func TestGranularityString(t *testing.T) {
	assert.Equal(t, "unknown", GranularityUnknown.String())
	assert.Equal(t, "second", GranularitySecond.String())
}
