package ner

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs the prose NER model. prose reports entity text and
// label only; offsets are recovered with a forward cursor so repeated entity
// text resolves to successive occurrences.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (r *ProseRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose document failed: %w", err)
	}

	raw := doc.Entities()
	entities := make([]Entity, 0, len(raw))
	cursor := 0
	for _, ent := range raw {
		idx := strings.Index(text[cursor:], ent.Text)
		if idx < 0 {
			// Tokenization can normalize the surface form; keep the entity
			// without offsets rather than dropping it.
			entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
			continue
		}
		start := cursor + idx
		end := start + len(ent.Text)
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label, Start: start, End: end})
		cursor = end
	}

	return entities, nil
}
