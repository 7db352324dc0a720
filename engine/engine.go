package engine

import "github.com/annotext/annotext/span"

// Engine is the annotation engine facade. Every span an Engine receives or
// returns is expressed in codepoint offsets into the given text.
//
// Implementations must be safe for concurrent calls on distinct texts;
// Close releases the instance and no call may follow it.
type Engine interface {
	// SuggestSelection extends a user selection (often a tap, an empty
	// span) to the entity boundaries the engine detects around it.
	SuggestSelection(text string, sel span.Span, opts *SelectionOptions) (span.Span, error)

	// ClassifyText classifies the selected substring into collections
	// ("address", "phone", ...), best match first.
	ClassifyText(text string, sel span.Span, opts *ClassificationOptions) ([]Classification, error)

	// Annotate runs entity detection over the whole text.
	Annotate(text string, opts *AnnotationOptions) ([]AnnotatedSpan, error)

	// InitializeKnowledgeEngine hands a serialized knowledge-engine
	// configuration to the engine. Optional capability: engines without a
	// knowledge component return an error.
	InitializeKnowledgeEngine(config []byte) error

	// Close releases the engine instance.
	Close() error
}
