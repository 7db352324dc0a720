package boundary

import (
	"errors"
	"testing"

	"github.com/annotext/annotext/engine"
	"github.com/annotext/annotext/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClassifications() []engine.Classification {
	return []engine.Classification{
		{
			Collection: "datetime",
			Score:      0.92,
			Datetime:   engine.DatetimeAt(1724572800000, engine.GranularityHour),
		},
		{
			Collection:       "entity",
			Score:            0.5,
			KnowledgePayload: []byte{1, 2, 3, 4},
		},
		{
			Collection: "other",
			Score:      -1.5,
		},
	}
}

func TestClassificationsRoundTrip(t *testing.T) {
	in := sampleClassifications()
	data, err := MarshalClassifications(in)
	require.NoError(t, err)

	out, err := UnmarshalClassifications(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEmptyClassifications(t *testing.T) {
	data, err := MarshalClassifications(nil)
	require.NoError(t, err)

	out, err := UnmarshalClassifications(data)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAnnotationsRoundTripWithUnresolvedEndpoint(t *testing.T) {
	in := []engine.AnnotatedSpan{
		{Span: span.New(0, 4), Classifications: sampleClassifications()},
		{Span: span.New(span.Unset, 7)}, // unresolved start survives the wire
	}
	data, err := MarshalAnnotations(in)
	require.NoError(t, err)

	out, err := UnmarshalAnnotations(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0].Classifications, out[0].Classifications)
	assert.Equal(t, span.New(span.Unset, 7), out[1].Span)
	assert.Empty(t, out[1].Classifications)
}

func TestUnmarshalRejectsTruncatedData(t *testing.T) {
	data, err := MarshalClassifications(sampleClassifications())
	require.NoError(t, err)

	for cut := 0; cut < len(data); cut++ {
		_, err := UnmarshalClassifications(data[:cut])
		if err == nil {
			t.Fatalf("no error for data truncated to %d bytes", cut)
		}
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	data, err := MarshalClassifications(nil)
	require.NoError(t, err)

	_, err = UnmarshalClassifications(append(data, 0x00))
	assert.Error(t, err)
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	data, err := MarshalClassifications(nil)
	require.NoError(t, err)
	data[0] = 99

	_, err = UnmarshalClassifications(data)
	assert.True(t, errors.Is(err, ErrCodecVersion))
}
