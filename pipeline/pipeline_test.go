package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexchunk/patterns"
	"lexchunk/pkg/ner"
)

func newTestProcessor(t *testing.T, cfg *Config) *Processor {
	t.Helper()
	p, err := NewProcessor(
		periodSegmenter{},
		&stubRecognizer{entities: []ner.Entity{{Text: "Acme Corp", Label: "ORG"}}},
		&stubEmbedder{vector: []float32{0.5, 0.5}},
		patterns.NewLegalLibrary(),
		nil,
		cfg,
		zap.NewNop(),
	)
	require.NoError(t, err)
	return p
}

func TestProcessDocument_Success(t *testing.T) {
	p := newTestProcessor(t, nil)

	content := "The agreement binds both parties. The plaintiff seeks damages under Section 12. A favorable outcome is expected."
	result := p.ProcessDocument(context.Background(), "doc1", "Sample Agreement", content)

	require.True(t, result.Success, "unexpected failure: %s", result.ErrorMessage)
	assert.Equal(t, "doc1", result.DocumentID)
	assert.Equal(t, "Sample Agreement", result.Title)
	assert.Equal(t, len(result.Chunks), result.TotalChunks)
	require.NotEmpty(t, result.Chunks)
	assert.GreaterOrEqual(t, result.ProcessingTime, 0.0)

	first := result.Chunks[0]
	assert.NotEmpty(t, first.Keywords)
	assert.NotEmpty(t, first.Entities)
	assert.NotEmpty(t, first.Embedding)
	assert.GreaterOrEqual(t, first.ImportanceScore, 0.0)
	assert.LessOrEqual(t, first.ImportanceScore, 1.0)

	// The stub recognizer yields exactly one entity per chunk.
	assert.Equal(t, len(result.Chunks), result.Metadata.TotalEntities)
	assert.InDelta(t, averageImportance(result.Chunks), result.Metadata.AverageImportance, 1e-9)
}

func averageImportance(chunks []Chunk) float64 {
	var total float64
	for _, c := range chunks {
		total += c.ImportanceScore
	}
	return total / float64(len(chunks))
}

func TestProcessDocument_EmptyContent(t *testing.T) {
	p := newTestProcessor(t, nil)

	for _, content := range []string{"", "   \n\t "} {
		result := p.ProcessDocument(context.Background(), "doc1", "", content)
		assert.False(t, result.Success)
		assert.Contains(t, result.ErrorMessage, "no usable content")
		assert.Empty(t, result.Chunks)
	}
}

func TestProcessDocument_ConsolidatesIdenticalChunks(t *testing.T) {
	// Every chunk embeds to the same vector, so everything past the first
	// chunk folds into it.
	cfg := DefaultConfig()
	cfg.MaxChunkSize = 60
	cfg.OverlapSize = 10
	p := newTestProcessor(t, cfg)

	content := "The first clause covers payment terms in detail. The second clause covers delivery terms in detail. The third clause covers warranty terms in detail."
	result := p.ProcessDocument(context.Background(), "doc1", "", content)

	require.True(t, result.Success)
	require.Len(t, result.Chunks, 1)
	merged := result.Chunks[0]
	assert.Equal(t, "doc1_merged_0", merged.ChunkID)
	assert.GreaterOrEqual(t, len(merged.MergedFrom), 2)
}

func TestProcessDocument_Idempotent(t *testing.T) {
	// The stub capabilities are deterministic, so two runs over the same
	// input must produce identical chunk sets.
	p := newTestProcessor(t, nil)
	content := "The agreement binds both parties. The plaintiff seeks damages under Section 12. A favorable outcome is expected."

	first := p.ProcessDocument(context.Background(), "doc1", "Sample", content)
	second := p.ProcessDocument(context.Background(), "doc1", "Sample", content)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Chunks, second.Chunks)
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.TotalChunks, second.TotalChunks)
}

func TestNewProcessor_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxChunkSize = -5

	_, err := NewProcessor(periodSegmenter{}, &stubRecognizer{}, &stubEmbedder{vector: []float32{1}},
		patterns.NewLegalLibrary(), nil, cfg, zap.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
