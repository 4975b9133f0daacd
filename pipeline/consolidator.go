package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"lexchunk/pkg/embedding"
)

// Consolidator collapses near-duplicate chunks by embedding similarity.
//
// The clustering is a greedy anchor scan, reproduced exactly for parity with
// the legacy processor: chunks are visited in index order, each unconsumed
// chunk anchors a group, and every later unconsumed chunk whose similarity to
// the ANCHOR exceeds the threshold joins and is consumed. Membership is never
// tested between non-anchor members, so two chunks in one group are not
// guaranteed to exceed the threshold with each other.
type Consolidator struct {
	logger *zap.Logger
}

func NewConsolidator(logger *zap.Logger) *Consolidator {
	return &Consolidator{logger: logger}
}

// Consolidate partitions chunks into merge-groups and emits one consolidated
// chunk per group, in anchor index order. Every input chunk lands in exactly
// one group; inputs of length 0 or 1 are returned unchanged.
func (c *Consolidator) Consolidate(chunks []Chunk, threshold float32) []Chunk {
	if len(chunks) <= 1 {
		return chunks
	}

	sim := similarityMatrix(chunks)

	consumed := make([]bool, len(chunks))
	out := make([]Chunk, 0, len(chunks))

	for i := range chunks {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		group := []int{i}
		for j := i + 1; j < len(chunks); j++ {
			if consumed[j] {
				continue
			}
			if sim[i][j] > threshold {
				group = append(group, j)
				consumed[j] = true
			}
		}

		if len(group) == 1 {
			out = append(out, chunks[i])
			continue
		}
		out = append(out, c.merge(chunks, group))
	}

	return out
}

func (c *Consolidator) merge(chunks []Chunk, group []int) Chunk {
	anchor := chunks[group[0]]

	contents := make([]string, 0, len(group))
	mergedFrom := make([]string, 0, len(group))
	merged := Chunk{
		ChunkID:         mergedChunkID(anchor.DocumentID, anchor.ChunkIndex),
		DocumentID:      anchor.DocumentID,
		ChunkIndex:      anchor.ChunkIndex,
		StartOffset:     anchor.StartOffset,
		Embedding:       anchor.Embedding,
		Sentiment:       anchor.Sentiment,
		ConfidenceScore: anchor.ConfidenceScore,
	}

	seenKeyword := make(map[string]struct{})
	seenTerm := make(map[string]struct{})

	for _, idx := range group {
		src := chunks[idx]
		contents = append(contents, src.Content)
		mergedFrom = append(mergedFrom, src.ChunkID)

		merged.EndOffset = src.EndOffset
		merged.WordCount += src.WordCount
		merged.SentenceCount += src.SentenceCount
		merged.TokenCount += src.TokenCount
		merged.Entities = append(merged.Entities, src.Entities...)
		if src.ImportanceScore > merged.ImportanceScore {
			merged.ImportanceScore = src.ImportanceScore
		}

		for _, kw := range src.Keywords {
			if _, ok := seenKeyword[kw]; ok {
				continue
			}
			seenKeyword[kw] = struct{}{}
			merged.Keywords = append(merged.Keywords, kw)
		}
		for _, term := range src.DomainTerms {
			key := term.Category + "\x00" + strings.ToLower(term.Text)
			if _, ok := seenTerm[key]; ok {
				continue
			}
			seenTerm[key] = struct{}{}
			merged.DomainTerms = append(merged.DomainTerms, term)
		}
	}

	merged.Content = strings.Join(contents, " ")
	merged.MergedFrom = mergedFrom

	c.logger.Debug("merged similar chunks",
		zap.String("chunk_id", merged.ChunkID),
		zap.Int("sources", len(group)))

	return merged
}

func similarityMatrix(chunks []Chunk) [][]float32 {
	sim := make([][]float32, len(chunks))
	for i := range chunks {
		sim[i] = make([]float32, len(chunks))
	}
	for i := range chunks {
		sim[i][i] = 1
		for j := i + 1; j < len(chunks); j++ {
			s := embedding.CosineSimilarity(chunks[i].Embedding, chunks[j].Embedding)
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}
