/*
Package annotext embeds text-annotation engines behind a span-converting
boundary.

Annotation engines address text in Unicode codepoint offsets; most hosts —
UI toolkits, managed runtimes, wire protocols — address it in UTF-16 code
units. This module owns the translation between the two index spaces and
the plumbing around it: an explicit handle registry for engine instances,
option and result contracts, and a binary serialization of results for
callers on the far side of a process or language boundary.

The root package is a thin convenience layer. Clients who need more
control — their own registry, the wire encoding, direct conversion — use
the span, engine and boundary packages directly.
*/
package annotext

import (
	"github.com/annotext/annotext/boundary"
	"github.com/annotext/annotext/engine"
	"github.com/annotext/annotext/span"
)

// Annotator binds one registered engine instance to the UTF-16 boundary
// surface. All spans accepted and returned are in UTF-16 code units.
type Annotator struct {
	handle  engine.Handle
	service *boundary.Service
}

// Open registers e with the default registry and returns an annotator
// bound to it. The annotator owns the registration; release it with Close.
func Open(e engine.Engine) (*Annotator, error) {
	h, err := engine.Register(e)
	if err != nil {
		return nil, err
	}
	return &Annotator{
		handle:  h,
		service: boundary.NewService(engine.Default()),
	}, nil
}

// Handle returns the registry handle backing this annotator.
func (a *Annotator) Handle() engine.Handle {
	return a.handle
}

// SuggestSelection extends a selection to detected entity boundaries.
func (a *Annotator) SuggestSelection(text string, sel span.Span, opts *engine.SelectionOptions) (span.Span, error) {
	return a.service.SuggestSelection(a.handle, text, sel, opts)
}

// ClassifyText classifies the selected substring.
func (a *Annotator) ClassifyText(text string, sel span.Span, opts *engine.ClassificationOptions) ([]engine.Classification, error) {
	return a.service.ClassifyText(a.handle, text, sel, opts)
}

// Annotate detects entities over the whole text.
func (a *Annotator) Annotate(text string, opts *engine.AnnotationOptions) ([]engine.AnnotatedSpan, error) {
	return a.service.Annotate(a.handle, text, opts)
}

// InitializeKnowledgeEngine configures the engine's knowledge component.
func (a *Annotator) InitializeKnowledgeEngine(config []byte) error {
	return a.service.InitializeKnowledgeEngine(a.handle, config)
}

// Close releases the engine registration.
func (a *Annotator) Close() error {
	return engine.Close(a.handle)
}
