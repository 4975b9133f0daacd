package pipeline

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"lexchunk/pkg/embedding"
)

// SearchResult pairs a chunk with its similarity to the query.
type SearchResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float32 `json:"score"`
}

// Matcher ranks an already-produced chunk set against a query embedding.
type Matcher struct {
	embedder embedding.Client
	logger   *zap.Logger
}

func NewMatcher(embedder embedding.Client, logger *zap.Logger) *Matcher {
	return &Matcher{embedder: embedder, logger: logger}
}

// Search returns up to topK chunks in descending cosine similarity to the
// query, ties broken by original chunk order. Chunks without an embedding are
// skipped, never an error. topK <= 0 yields an empty result.
func (m *Matcher) Search(ctx context.Context, query string, chunks []Chunk, topK int) ([]SearchResult, error) {
	if topK <= 0 {
		return nil, nil
	}

	vectors, err := m.embedder.GetEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}
	queryVector := vectors[0]

	results := make([]SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			continue
		}
		results = append(results, SearchResult{
			Chunk: chunk,
			Score: embedding.CosineSimilarity(queryVector, chunk.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}
