package boundary

import (
	"fmt"

	"github.com/annotext/annotext/engine"
	"github.com/annotext/annotext/span"
)

// Service is the UTF-16 surface over a registry of annotation engines.
// All text offsets accepted or returned by its methods are UTF-16 code-unit
// offsets into the given text.
//
// A Service holds no per-call state and is safe for concurrent use.
type Service struct {
	reg *engine.Registry
}

// NewService returns a service over reg. A nil reg means the default
// registry.
func NewService(reg *engine.Registry) *Service {
	if reg == nil {
		reg = engine.Default()
	}
	return &Service{reg: reg}
}

// SuggestSelection converts sel to codepoint offsets, asks the engine for
// an extended selection and converts the answer back. Endpoints of the
// result that do not resolve stay [span.Unset]; callers must treat such a
// result as "no valid selection".
func (s *Service) SuggestSelection(h engine.Handle, text string, sel span.Span, opts *engine.SelectionOptions) (span.Span, error) {
	eng, err := s.reg.Get(h)
	if err != nil {
		return span.Unresolved(), err
	}

	in := span.ToCodepoints(text, sel)
	if !in.Resolved() {
		return span.Unresolved(), fmt.Errorf("%w: %v", ErrUnresolvedSpan, sel)
	}

	out, err := eng.SuggestSelection(text, in, opts)
	if err != nil {
		return span.Unresolved(), err
	}
	tracer().Debugf("selection %v -> %v (codepoints)", in, out)
	return span.ToUTF16(text, out), nil
}

// ClassifyText converts sel to codepoint offsets and classifies the
// selected substring.
func (s *Service) ClassifyText(h engine.Handle, text string, sel span.Span, opts *engine.ClassificationOptions) ([]engine.Classification, error) {
	eng, err := s.reg.Get(h)
	if err != nil {
		return nil, err
	}

	in := span.ToCodepoints(text, sel)
	if !in.Resolved() {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvedSpan, sel)
	}
	return eng.ClassifyText(text, in, opts)
}

// Annotate runs entity detection over text and returns every detected span
// with offsets converted to UTF-16 code units.
func (s *Service) Annotate(h engine.Handle, text string, opts *engine.AnnotationOptions) ([]engine.AnnotatedSpan, error) {
	eng, err := s.reg.Get(h)
	if err != nil {
		return nil, err
	}

	annotations, err := eng.Annotate(text, opts)
	if err != nil {
		return nil, err
	}

	out := make([]engine.AnnotatedSpan, len(annotations))
	for i, a := range annotations {
		out[i] = engine.AnnotatedSpan{
			Span:            span.ToUTF16(text, a.Span),
			Classifications: a.Classifications,
		}
	}
	return out, nil
}

// InitializeKnowledgeEngine hands a serialized configuration to the engine
// behind h.
func (s *Service) InitializeKnowledgeEngine(h engine.Handle, config []byte) error {
	eng, err := s.reg.Get(h)
	if err != nil {
		return err
	}
	return eng.InitializeKnowledgeEngine(config)
}

// ClassifyTextWire is ClassifyText with the result encoded for transport
// across the boundary.
func (s *Service) ClassifyTextWire(h engine.Handle, text string, sel span.Span, opts *engine.ClassificationOptions) ([]byte, error) {
	results, err := s.ClassifyText(h, text, sel, opts)
	if err != nil {
		return nil, err
	}
	return MarshalClassifications(results)
}

// AnnotateWire is Annotate with the result encoded for transport across
// the boundary.
func (s *Service) AnnotateWire(h engine.Handle, text string, opts *engine.AnnotationOptions) ([]byte, error) {
	annotations, err := s.Annotate(h, text, opts)
	if err != nil {
		return nil, err
	}
	return MarshalAnnotations(annotations)
}
