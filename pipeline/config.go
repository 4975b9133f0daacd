package pipeline

import (
	"fmt"
	"time"
)

// ScoringWeights drives the importance score: a weighted sum over counted
// domain terms, citation references, and high-value entities, clamped to [0,1].
type ScoringWeights struct {
	LegalTerm        float64 `yaml:"legal_term" json:"legal_term"`
	CaseReference    float64 `yaml:"case_reference" json:"case_reference"`
	StatuteReference float64 `yaml:"statute_reference" json:"statute_reference"`
	Entity           float64 `yaml:"entity" json:"entity"`
}

type Config struct {
	MaxChunkSize        int           `yaml:"max_chunk_size"`
	OverlapSize         int           `yaml:"overlap_size"`
	SimilarityThreshold float32       `yaml:"similarity_threshold"`
	TopK                int           `yaml:"top_k"`
	Workers             int           `yaml:"workers"`
	CapabilityTimeout   time.Duration `yaml:"capability_timeout"`
	KeywordLimit        int           `yaml:"keyword_limit"`

	// Entity labels counted toward the importance score.
	HighValueLabels []string       `yaml:"high_value_labels"`
	Weights         ScoringWeights `yaml:"weights"`

	// Sentiment lexicons. Both empty disables sentiment entirely.
	PositiveWords []string `yaml:"positive_words"`
	NegativeWords []string `yaml:"negative_words"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxChunkSize:        1000,
		OverlapSize:         200,
		SimilarityThreshold: 0.8,
		TopK:                5,
		Workers:             4,
		CapabilityTimeout:   10 * time.Second,
		KeywordLimit:        10,
		HighValueLabels:     []string{"PERSON", "ORG", "GPE", "LAW"},
		Weights: ScoringWeights{
			LegalTerm:        0.1,
			CaseReference:    0.2,
			StatuteReference: 0.15,
			Entity:           0.05,
		},
		PositiveWords: []string{"good", "favorable", "positive", "beneficial", "advantageous"},
		NegativeWords: []string{"bad", "negative", "harmful", "detrimental", "adverse"},
	}
}

// Validate rejects a configuration before any processing starts.
func (c *Config) Validate() error {
	if c.MaxChunkSize <= 0 {
		return fmt.Errorf("%w: max_chunk_size must be positive, got %d", ErrInvalidConfig, c.MaxChunkSize)
	}
	if c.OverlapSize < 0 {
		return fmt.Errorf("%w: overlap_size must not be negative, got %d", ErrInvalidConfig, c.OverlapSize)
	}
	if c.OverlapSize >= c.MaxChunkSize {
		return fmt.Errorf("%w: overlap_size %d must be smaller than max_chunk_size %d", ErrInvalidConfig, c.OverlapSize, c.MaxChunkSize)
	}
	if c.SimilarityThreshold < 0 {
		return fmt.Errorf("%w: similarity_threshold must not be negative, got %v", ErrInvalidConfig, c.SimilarityThreshold)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.CapabilityTimeout <= 0 {
		return fmt.Errorf("%w: capability_timeout must be positive, got %v", ErrInvalidConfig, c.CapabilityTimeout)
	}
	return nil
}

func (c *Config) highValueLabelSet() map[string]bool {
	set := make(map[string]bool, len(c.HighValueLabels))
	for _, label := range c.HighValueLabels {
		set[label] = true
	}
	return set
}
