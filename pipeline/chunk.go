// Package pipeline turns extracted document text into a consolidated set of
// annotated chunks: sentence-bounded assembly with overlap, per-chunk metadata
// annotation, and a similarity-driven merge pass with provenance.
package pipeline

import (
	"fmt"

	"lexchunk/patterns"
	"lexchunk/pkg/ner"
)

// Chunk is the unit record flowing through the pipeline. Assembly fills the
// span fields, annotation fills the metadata fields exactly once, and
// consolidation may fold several source chunks into one, recording them in
// MergedFrom. A chunk is never mutated after the stage that produced it.
type Chunk struct {
	ChunkID     string `json:"chunk_id"`
	DocumentID  string `json:"document_id"`
	ChunkIndex  int    `json:"chunk_index"`
	Content     string `json:"content"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`

	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	TokenCount    int `json:"token_count"`

	Entities        []ner.Entity     `json:"entities"`
	Keywords        []string         `json:"keywords"`
	DomainTerms     []patterns.Match `json:"domain_terms"`
	Embedding       []float32        `json:"embedding,omitempty"`
	ImportanceScore float64          `json:"importance_score"`
	Sentiment       string           `json:"sentiment,omitempty"`
	ConfidenceScore float64          `json:"confidence_score"`

	// MergedFrom lists the source chunk ids of a consolidated chunk, anchor
	// first, in source order. Empty when no merge occurred.
	MergedFrom []string `json:"merged_from,omitempty"`
}

func chunkID(documentID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", documentID, index)
}

func mergedChunkID(documentID string, index int) string {
	return fmt.Sprintf("%s_merged_%d", documentID, index)
}
