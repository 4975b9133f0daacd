package segment

// Span is a sentence located within its owning text. Offsets are 0-based,
// half-open, in bytes of the text handed to the segmenter.
type Span struct {
	Text  string
	Start int
	End   int
}

// Segmenter splits text into an ordered sequence of non-overlapping sentence
// spans. Implementations must be safe for concurrent use.
type Segmenter interface {
	Segment(text string) ([]Span, error)
}
