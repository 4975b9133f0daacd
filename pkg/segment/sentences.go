package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSegmenter segments text with the neurosnap Punkt tokenizer trained on
// English. The tokenizer reports sentence text only, so spans are recovered by
// advancing a cursor through the input; sentences arrive in document order, so
// each lookup is anchored at the end of the previous sentence and cannot match
// an earlier duplicate.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english sentence tokenizer: %w", err)
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

func (s *PunktSegmenter) Segment(text string) ([]Span, error) {
	raw := s.tokenizer.Tokenize(text)

	spans := make([]Span, 0, len(raw))
	cursor := 0
	for _, sent := range raw {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			return nil, fmt.Errorf("sentence %q not found at or after offset %d", trimmed, cursor)
		}
		start := cursor + idx
		end := start + len(trimmed)
		spans = append(spans, Span{Text: trimmed, Start: start, End: end})
		cursor = end
	}

	return spans, nil
}
