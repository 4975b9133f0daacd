package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TEIClient talks to a HuggingFace text-embeddings-inference service.
type TEIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTEIClient(baseURL string) *TEIClient {
	return &TEIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *TEIClient) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.post(ctx, EmbeddingRequest{Inputs: texts})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embed request failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var vectors EmbeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embed service returned %d vectors for %d inputs", len(vectors), len(texts))
	}
	return vectors, nil
}

func (c *TEIClient) post(ctx context.Context, body EmbeddingRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/embed", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	return resp, nil
}
