package pipeline

import (
	"context"
	"errors"

	"lexchunk/pkg/ner"
	"lexchunk/pkg/segment"
)

// spanSegmenter replays a fixed span sequence.
type spanSegmenter struct {
	spans []segment.Span
}

func (s *spanSegmenter) Segment(string) ([]segment.Span, error) {
	return s.spans, nil
}

// failingSegmenter forces the assembler onto its fallback path.
type failingSegmenter struct{}

func (failingSegmenter) Segment(string) ([]segment.Span, error) {
	return nil, errors.New("tokenizer unavailable")
}

// periodSegmenter splits on '.' with exact offsets, good enough for
// deterministic end-to-end tests.
type periodSegmenter struct{}

func (periodSegmenter) Segment(text string) ([]segment.Span, error) {
	var spans []segment.Span
	start := -1
	for i := 0; i < len(text); i++ {
		if start < 0 && text[i] != ' ' {
			start = i
		}
		if text[i] == '.' && start >= 0 {
			spans = append(spans, segment.Span{Text: text[start : i+1], Start: start, End: i + 1})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, segment.Span{Text: text[start:], Start: start, End: len(text)})
	}
	return spans, nil
}

type stubRecognizer struct {
	entities []ner.Entity
	err      error
}

func (s *stubRecognizer) Recognize(context.Context, string) ([]ner.Entity, error) {
	return s.entities, s.err
}

// blockingRecognizer waits for ctx to expire, like a hung model server.
type blockingRecognizer struct{}

func (blockingRecognizer) Recognize(ctx context.Context, _ string) ([]ner.Entity, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// stubEmbedder returns one fixed vector per input text, or fails as a whole.
type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vector
	}
	return out, nil
}

// fixedCounter reports a constant token count.
type fixedCounter struct {
	n int
}

func (c fixedCounter) Count(string) int { return c.n }
