package embedding

import "context"

type EmbeddingRequest struct {
	Inputs []string `json:"inputs"`
}

type EmbeddingResponse [][]float32

// Client maps text spans to fixed-dimensionality vectors. Implementations must
// be deterministic for equal input and safe for concurrent use.
type Client interface {
	// One vector per input text, in input order.
	// Input: ["a clause about damages"] → [[0.12, -0.33, 0.57, ...]]
	GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}
