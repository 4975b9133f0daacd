package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexchunk/keywords"
	"lexchunk/patterns"
	"lexchunk/pkg/embedding"
	"lexchunk/pkg/ner"
	"lexchunk/pkg/segment"
)

// ResultMetadata aggregates chunk-level annotation counts for a document.
type ResultMetadata struct {
	TotalEntities     int     `json:"total_entities"`
	TotalLegalTerms   int     `json:"total_legal_terms"`
	AverageImportance float64 `json:"average_importance"`
}

// Result is the document-level outcome. Failures never raise out of the
// pipeline: callers receive Success=false with a message instead.
type Result struct {
	DocumentID     string         `json:"document_id"`
	Title          string         `json:"title"`
	Chunks         []Chunk        `json:"chunks"`
	TotalChunks    int            `json:"total_chunks"`
	Metadata       ResultMetadata `json:"metadata"`
	ProcessingTime float64        `json:"processing_time"`
	Success        bool           `json:"success"`
	ErrorMessage   string         `json:"error_message,omitempty"`
}

// Processor runs the full transformation: assemble → annotate → consolidate.
// Capabilities are injected once per process and shared across documents; a
// Processor is safe for concurrent use across documents, and each invocation
// owns its chunk set exclusively.
type Processor struct {
	assembler    *Assembler
	annotator    *Annotator
	consolidator *Consolidator
	cfg          *Config
	logger       *zap.Logger
}

func NewProcessor(
	segmenter segment.Segmenter,
	recognizer ner.Recognizer,
	embedder embedding.Client,
	library *patterns.Library,
	counter TokenCounter,
	cfg *Config,
	logger *zap.Logger,
) (*Processor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extractor := keywords.NewExtractor(cfg.KeywordLimit)

	return &Processor{
		assembler:    NewAssembler(segmenter, counter, logger),
		annotator:    NewAnnotator(recognizer, embedder, library, extractor, cfg, logger),
		consolidator: NewConsolidator(logger),
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// Config returns the validated configuration the processor runs with.
func (p *Processor) Config() *Config {
	return p.cfg
}

// ProcessDocument chunks, annotates, and consolidates one document. The
// returned result always carries the document id; inspect Success before
// using the chunk set.
func (p *Processor) ProcessDocument(ctx context.Context, documentID, title, content string) *Result {
	started := time.Now()

	raw, err := p.assembler.Assemble(content, documentID, p.cfg)
	if err != nil {
		return p.failure(documentID, title, started, fmt.Errorf("%w: %v", ErrExtractionFailed, err))
	}
	if len(raw) == 0 {
		return p.failure(documentID, title, started, ErrEmptyContent)
	}

	annotated := p.annotator.AnnotateAll(ctx, raw)
	consolidated := p.consolidator.Consolidate(annotated, p.cfg.SimilarityThreshold)

	result := &Result{
		DocumentID:     documentID,
		Title:          title,
		Chunks:         consolidated,
		TotalChunks:    len(consolidated),
		Metadata:       summarize(consolidated),
		ProcessingTime: time.Since(started).Seconds(),
		Success:        true,
	}

	p.logger.Info("document processed",
		zap.String("document_id", documentID),
		zap.Int("raw_chunks", len(raw)),
		zap.Int("chunks", len(consolidated)),
		zap.Float64("processing_time", result.ProcessingTime))

	return result
}

func (p *Processor) failure(documentID, title string, started time.Time, err error) *Result {
	p.logger.Warn("document processing failed",
		zap.String("document_id", documentID),
		zap.Error(err))
	return &Result{
		DocumentID:     documentID,
		Title:          title,
		ProcessingTime: time.Since(started).Seconds(),
		Success:        false,
		ErrorMessage:   err.Error(),
	}
}

func summarize(chunks []Chunk) ResultMetadata {
	var md ResultMetadata
	if len(chunks) == 0 {
		return md
	}
	var total float64
	for _, chunk := range chunks {
		md.TotalEntities += len(chunk.Entities)
		for _, term := range chunk.DomainTerms {
			if term.Category == patterns.CategoryLegalTerm {
				md.TotalLegalTerms++
			}
		}
		total += chunk.ImportanceScore
	}
	md.AverageImportance = total / float64(len(chunks))
	return md
}
