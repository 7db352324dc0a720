package span

// ToUTF16 maps a span of codepoint offsets into text to the equivalent span
// of UTF-16 code-unit offsets.
//
// `text` is UTF-8 encoded and scanned once, in order. An endpoint that does
// not land on any codepoint boundary of the text — negative, past the end,
// or already Unset — comes back as [Unset]. Both endpoints are resolved
// independently.
func ToUTF16(text string, sp Span) Span {
	return convert(text, sp, true)
}

// ToCodepoints maps a span of UTF-16 code-unit offsets into text to the
// equivalent span of codepoint offsets. It is the inverse of [ToUTF16];
// unresolvable endpoints come back as [Unset]. A UTF-16 offset pointing
// between the two halves of a surrogate pair resolves to nothing.
func ToCodepoints(text string, sp Span) Span {
	return convert(text, sp, false)
}

// convert advances a codepoint counter and a UTF-16 code-unit counter in
// lockstep over the scalar values of text. At every boundary — before the
// first scalar, between scalars, and after the last — the source counter is
// compared against both input endpoints; on a match the target counter's
// value is recorded. The final comparison after the loop resolves endpoints
// equal to the text length.
func convert(text string, sp Span, fromCodepoints bool) Span {
	var cp, cu int

	src, tgt := &cp, &cu
	if !fromCodepoints {
		src, tgt = &cu, &cp
	}

	out := Unresolved()
	assign := func() {
		if sp.Start == *src {
			out.Start = *tgt
		}
		if sp.End == *src {
			out.End = *tgt
		}
	}

	for _, r := range text {
		assign()
		cp++
		cu++
		// Scalar values beyond the BMP occupy a surrogate pair in UTF-16.
		if r > 0xFFFF {
			cu++
		}
	}
	assign()

	return out
}
