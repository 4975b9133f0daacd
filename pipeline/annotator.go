package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lexchunk/keywords"
	"lexchunk/patterns"
	"lexchunk/pkg/embedding"
	"lexchunk/pkg/ner"
)

// Annotator enriches a raw chunk with entities, keywords, domain terms, an
// embedding, an importance score, and sentiment. Each sub-feature degrades
// independently: a failed capability call is logged and leaves the field at
// its zero value, it never fails the chunk or the document.
type Annotator struct {
	recognizer ner.Recognizer
	embedder   embedding.Client
	library    *patterns.Library
	extractor  *keywords.Extractor
	cfg        *Config
	highValue  map[string]bool
	logger     *zap.Logger
}

func NewAnnotator(
	recognizer ner.Recognizer,
	embedder embedding.Client,
	library *patterns.Library,
	extractor *keywords.Extractor,
	cfg *Config,
	logger *zap.Logger,
) *Annotator {
	return &Annotator{
		recognizer: recognizer,
		embedder:   embedder,
		library:    library,
		extractor:  extractor,
		cfg:        cfg,
		highValue:  cfg.highValueLabelSet(),
		logger:     logger,
	}
}

// Annotate is a pure function of chunk content plus the injected capabilities;
// it never touches other chunks.
func (a *Annotator) Annotate(ctx context.Context, chunk Chunk) Chunk {
	chunk.Entities = a.recognizeEntities(ctx, chunk)
	chunk.Keywords = a.extractKeywords(chunk)
	chunk.DomainTerms = a.library.FindAll(chunk.Content)
	chunk.Embedding = a.embed(ctx, chunk)
	chunk.ImportanceScore = a.importance(&chunk)
	chunk.Sentiment = a.sentiment(chunk.Content)
	if chunk.ConfidenceScore == 0 {
		chunk.ConfidenceScore = 1.0
	}
	return chunk
}

// AnnotateAll annotates chunks concurrently over a bounded worker pool.
// Annotation is an independent per-chunk map, so order of execution does not
// matter; output order matches input order.
func (a *Annotator) AnnotateAll(ctx context.Context, chunks []Chunk) []Chunk {
	out := make([]Chunk, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			out[i] = a.Annotate(gctx, chunk)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (a *Annotator) recognizeEntities(ctx context.Context, chunk Chunk) []ner.Entity {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.CapabilityTimeout)
	defer cancel()

	entities, err := a.recognizer.Recognize(ctx, chunk.Content)
	if err != nil {
		a.logger.Warn("entity recognition degraded",
			zap.String("chunk_id", chunk.ChunkID),
			zap.Error(err))
		return nil
	}
	return entities
}

func (a *Annotator) extractKeywords(chunk Chunk) []string {
	kws, err := a.extractor.Extract(chunk.Content)
	if err != nil {
		a.logger.Warn("keyword extraction degraded",
			zap.String("chunk_id", chunk.ChunkID),
			zap.Error(err))
		return nil
	}
	return kws
}

func (a *Annotator) embed(ctx context.Context, chunk Chunk) []float32 {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.CapabilityTimeout)
	defer cancel()

	vectors, err := a.embedder.GetEmbeddings(ctx, []string{chunk.Content})
	if err != nil || len(vectors) == 0 {
		a.logger.Warn("embedding degraded",
			zap.String("chunk_id", chunk.ChunkID),
			zap.Error(err))
		return nil
	}
	return vectors[0]
}

func (a *Annotator) importance(chunk *Chunk) float64 {
	var legalTerms, caseRefs, statuteRefs int
	for _, m := range chunk.DomainTerms {
		switch m.Category {
		case patterns.CategoryLegalTerm:
			legalTerms++
		case patterns.CategoryCaseReference:
			caseRefs++
		case patterns.CategoryStatuteReference:
			statuteRefs++
		}
	}

	w := a.cfg.Weights
	score := w.LegalTerm*float64(legalTerms) +
		w.CaseReference*float64(caseRefs) +
		w.StatuteReference*float64(statuteRefs)

	for _, ent := range chunk.Entities {
		if a.highValue[ent.Label] {
			score += w.Entity
		}
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// sentiment counts which lexicon words are present in the lower-cased content.
// Presence, not occurrences: a word repeated ten times still counts once.
func (a *Annotator) sentiment(content string) string {
	if len(a.cfg.PositiveWords) == 0 && len(a.cfg.NegativeWords) == 0 {
		return ""
	}

	lower := strings.ToLower(content)
	var positive, negative int
	for _, word := range a.cfg.PositiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range a.cfg.NegativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}
