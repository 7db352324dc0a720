package boundary

import (
	"errors"
	"testing"

	"github.com/annotext/annotext/engine"
	"github.com/annotext/annotext/span"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

// stubEngine records the codepoint spans it receives and plays back canned
// results.
type stubEngine struct {
	lastSelection   span.Span
	selection       span.Span
	classifications []engine.Classification
	annotations     []engine.AnnotatedSpan
	knowledgeConfig []byte
	err             error
}

func (e *stubEngine) SuggestSelection(text string, sel span.Span, opts *engine.SelectionOptions) (span.Span, error) {
	e.lastSelection = sel
	return e.selection, e.err
}

func (e *stubEngine) ClassifyText(text string, sel span.Span, opts *engine.ClassificationOptions) ([]engine.Classification, error) {
	e.lastSelection = sel
	return e.classifications, e.err
}

func (e *stubEngine) Annotate(text string, opts *engine.AnnotationOptions) ([]engine.AnnotatedSpan, error) {
	return e.annotations, e.err
}

func (e *stubEngine) InitializeKnowledgeEngine(config []byte) error {
	e.knowledgeConfig = append([]byte(nil), config...)
	return e.err
}

func (e *stubEngine) Close() error { return nil }

type BoundaryTestEnviron struct {
	suite.Suite
	reg     *engine.Registry
	service *Service
	stub    *stubEngine
	handle  engine.Handle
}

// listen for 'go test' command --> run test methods
func TestBoundaryService(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "annotext.boundary")
	defer teardown()
	suite.Run(t, new(BoundaryTestEnviron))
}

// run before each test method
func (env *BoundaryTestEnviron) SetupTest() {
	env.reg = engine.NewRegistry()
	env.service = NewService(env.reg)
	env.stub = &stubEngine{}
	h, err := env.reg.Register(env.stub)
	env.Require().NoError(err)
	env.handle = h
}

// --- Tests -----------------------------------------------------------------

// Text used throughout: 'a' U+1F600 'b' = codepoints a(0) 😀(1) b(2),
// UTF-16 units a(0) 😀(1,2) b(3).
const emojiText = "a\U0001F600b"

func (env *BoundaryTestEnviron) TestSuggestSelectionConvertsBothWays() {
	env.stub.selection = span.New(0, 3) // whole text, codepoints

	got, err := env.service.SuggestSelection(env.handle, emojiText,
		span.New(1, 3), nil) // the emoji, UTF-16 units
	env.Require().NoError(err)

	env.Equal(span.New(1, 2), env.stub.lastSelection,
		"engine must see codepoint offsets")
	env.Equal(span.New(0, 4), got,
		"caller must see UTF-16 offsets")
}

func (env *BoundaryTestEnviron) TestSuggestSelectionRejectsUnresolvableSpan() {
	// UTF-16 offset 2 splits the surrogate pair.
	_, err := env.service.SuggestSelection(env.handle, emojiText,
		span.New(2, 3), nil)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrUnresolvedSpan))
	env.Equal(span.Span{}, env.stub.lastSelection,
		"engine must not be invoked with an unresolved span")
}

func (env *BoundaryTestEnviron) TestSuggestSelectionUnknownHandle() {
	_, err := env.service.SuggestSelection(engine.Handle(9999), emojiText,
		span.New(0, 1), nil)
	env.True(errors.Is(err, engine.ErrBadHandle))
}

func (env *BoundaryTestEnviron) TestClassifyTextPassesCodepointSpan() {
	env.stub.classifications = []engine.Classification{
		{Collection: "other", Score: 0.25},
	}
	results, err := env.service.ClassifyText(env.handle, emojiText,
		span.New(3, 4), nil) // 'b' in UTF-16 units
	env.Require().NoError(err)
	env.Equal(span.New(2, 3), env.stub.lastSelection)
	env.Len(results, 1)
	env.Equal("other", results[0].Collection)
}

func (env *BoundaryTestEnviron) TestAnnotateConvertsResultSpans() {
	env.stub.annotations = []engine.AnnotatedSpan{
		{Span: span.New(1, 2), Classifications: []engine.Classification{
			{Collection: "emoji", Score: 0.9},
		}},
		{Span: span.New(2, 3)},
	}
	got, err := env.service.Annotate(env.handle, emojiText, nil)
	env.Require().NoError(err)
	env.Require().Len(got, 2)
	env.Equal(span.New(1, 3), got[0].Span)
	env.Equal(span.New(3, 4), got[1].Span)
	env.Equal("emoji", got[0].Classifications[0].Collection)
}

func (env *BoundaryTestEnviron) TestAnnotatePropagatesEngineError() {
	env.stub.err = errors.New("model failure")
	_, err := env.service.Annotate(env.handle, emojiText, nil)
	env.EqualError(err, "model failure")
}

func (env *BoundaryTestEnviron) TestInitializeKnowledgeEngine() {
	config := []byte{0xCA, 0xFE}
	env.Require().NoError(
		env.service.InitializeKnowledgeEngine(env.handle, config))
	env.Equal(config, env.stub.knowledgeConfig)
}

func (env *BoundaryTestEnviron) TestAnnotateWireRoundTrip() {
	env.stub.annotations = []engine.AnnotatedSpan{
		{Span: span.New(0, 1), Classifications: []engine.Classification{
			{
				Collection: "datetime",
				Score:      0.75,
				Datetime:   engine.DatetimeAt(1724572800000, engine.GranularityDay),
			},
		}},
	}
	data, err := env.service.AnnotateWire(env.handle, emojiText, nil)
	env.Require().NoError(err)

	decoded, err := UnmarshalAnnotations(data)
	env.Require().NoError(err)
	env.Require().Len(decoded, 1)
	env.Equal(span.New(0, 1), decoded[0].Span)
	env.Equal(env.stub.annotations[0].Classifications, decoded[0].Classifications)
}
