package ner

import "context"

// Entity is a recognized named entity. Start and End are byte offsets relative
// to the text the recognizer was given.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Recognizer extracts named entities from a text span. Implementations must be
// safe for concurrent use and honor ctx cancellation.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
