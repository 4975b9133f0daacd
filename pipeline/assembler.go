package pipeline

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"

	"lexchunk/pkg/segment"
)

// Assembler builds the ordered raw chunk sequence for a document: sentences
// are accumulated greedily up to MaxChunkSize, each sealed chunk seeds the
// next with its trailing OverlapSize characters, and offsets are tracked as
// running positions into the normalized text. Chunks are always contiguous
// substrings of that text — the assembler never re-locates content by
// substring search, which is ambiguous when content repeats.
type Assembler struct {
	segmenter segment.Segmenter
	counter   TokenCounter
	logger    *zap.Logger
}

// NewAssembler wires the injected sentence segmenter. counter may be nil,
// which leaves token counts at zero.
func NewAssembler(segmenter segment.Segmenter, counter TokenCounter, logger *zap.Logger) *Assembler {
	return &Assembler{
		segmenter: segmenter,
		counter:   counter,
		logger:    logger,
	}
}

// Assemble returns the raw chunks for documentText. A blank document yields
// zero chunks and no error; the caller decides how to surface that.
func (a *Assembler) Assemble(documentText, documentID string, cfg *Config) ([]Chunk, error) {
	normalized := Normalize(documentText)
	if normalized == "" {
		return nil, nil
	}

	spans, err := a.segmenter.Segment(normalized)
	if err != nil || len(spans) == 0 {
		if err != nil {
			a.logger.Warn("sentence segmentation failed, falling back to recursive splitting",
				zap.String("document_id", documentID),
				zap.Error(err))
		}
		return a.fallbackChunks(normalized, documentID, cfg)
	}

	var chunks []Chunk
	start, end := -1, -1
	sentenceCount := 0

	for _, sp := range spans {
		if end > start && sp.End-start > cfg.MaxChunkSize {
			chunks = append(chunks, a.seal(normalized, documentID, len(chunks), start, end, sentenceCount))

			// Seed the next buffer with the sealed chunk's trailing overlap.
			overlapStart := end - cfg.OverlapSize
			if overlapStart < start {
				overlapStart = start
			}
			start = overlapStart
			sentenceCount = 0
		}
		if start < 0 {
			start = sp.Start
		}
		end = sp.End
		sentenceCount++
	}

	if end > start {
		chunks = append(chunks, a.seal(normalized, documentID, len(chunks), start, end, sentenceCount))
	}

	return chunks, nil
}

func (a *Assembler) seal(text, documentID string, index, start, end, sentences int) Chunk {
	content := text[start:end]
	return Chunk{
		ChunkID:         chunkID(documentID, index),
		DocumentID:      documentID,
		ChunkIndex:      index,
		Content:         content,
		StartOffset:     start,
		EndOffset:       end,
		WordCount:       len(strings.Fields(content)),
		SentenceCount:   sentences,
		TokenCount:      a.countTokens(content),
		ConfidenceScore: 1.0,
	}
}

func (a *Assembler) countTokens(content string) int {
	if a.counter == nil {
		return 0
	}
	return a.counter.Count(content)
}

// fallbackChunks is the degraded assembly mode when the segmenter produces
// nothing for non-empty text. Offsets are recovered with a forward cursor;
// overlap means consecutive fallback chunks can start before the previous one
// ends, so the cursor only advances past each chunk's start.
func (a *Assembler) fallbackChunks(normalized, documentID string, cfg *Config) ([]Chunk, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(cfg.MaxChunkSize),
		textsplitter.WithChunkOverlap(cfg.OverlapSize),
		textsplitter.WithSeparators([]string{"\n\n", "\n", ". ", "! ", "? ", " ", ""}),
	)
	parts, err := splitter.SplitText(normalized)
	if err != nil {
		return nil, fmt.Errorf("fallback splitting failed: %w", err)
	}

	var chunks []Chunk
	floor := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		start := floor
		if idx := strings.Index(normalized[floor:], part); idx >= 0 {
			start = floor + idx
		}
		end := start + len(part)
		if end > len(normalized) {
			end = len(normalized)
		}
		chunks = append(chunks, a.seal(normalized, documentID, len(chunks), start, end, 0))

		// The next part starts no earlier than end-OverlapSize. Anchoring the
		// search there keeps repetitive text from binding a part to an
		// occurrence before its true position.
		floor = end - cfg.OverlapSize
		if floor <= start {
			floor = start + 1
		}
	}

	return chunks, nil
}
