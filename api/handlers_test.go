package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexchunk/extract"
	"lexchunk/patterns"
	"lexchunk/pipeline"
	"lexchunk/pkg/ner"
	"lexchunk/pkg/segment"
	"lexchunk/store"
)

type stubSegmenter struct{}

func (stubSegmenter) Segment(text string) ([]segment.Span, error) {
	var spans []segment.Span
	start := -1
	for i := 0; i < len(text); i++ {
		if start < 0 && text[i] != ' ' {
			start = i
		}
		if text[i] == '.' && start >= 0 {
			spans = append(spans, segment.Span{Text: text[start : i+1], Start: start, End: i + 1})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, segment.Span{Text: text[start:], Start: start, End: len(text)})
	}
	return spans, nil
}

type stubRecognizer struct{}

func (stubRecognizer) Recognize(context.Context, string) ([]ner.Entity, error) {
	return []ner.Entity{{Text: "Acme Corp", Label: "ORG"}}, nil
}

type stubEmbedder struct{}

func (stubEmbedder) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.6, 0.8}
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := zap.NewNop()
	processor, err := pipeline.NewProcessor(
		stubSegmenter{}, stubRecognizer{}, stubEmbedder{},
		patterns.NewLegalLibrary(), nil, nil, logger,
	)
	require.NoError(t, err)

	st := &store.BoltStore{DBPath: filepath.Join(t.TempDir(), "api.db")}
	require.NoError(t, st.Init())
	t.Cleanup(func() { st.Close() })

	registry := extract.NewRegistry()
	registry.Register(".txt", extract.NewTextExtractor())

	matcher := pipeline.NewMatcher(stubEmbedder{}, logger)
	return NewServer(processor, matcher, st, nil, registry, 0, logger)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestProcessDocumentHandler(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.ProcessDocumentHandler, ProcessRequest{
		DocumentID: "doc1",
		Title:      "Agreement",
		Content:    "The agreement binds both parties. The plaintiff seeks damages.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Chunks)

	// Successful runs are persisted for search.
	stored, err := s.store.GetResult("doc1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.TotalChunks, stored.TotalChunks)
}

func TestProcessDocumentHandler_MissingID(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.ProcessDocumentHandler, ProcessRequest{Content: "Some content."})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessDocumentHandler_EmptyContentFails(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.ProcessDocumentHandler, ProcessRequest{DocumentID: "doc1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)

	// Failures are not persisted.
	stored, err := s.store.GetResult("doc1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestProcessDocumentHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ProcessDocumentHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestProcessFileHandler(t *testing.T) {
	s := newTestServer(t)

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("The contract was signed. Payment is due."), 0644))

	rec := postJSON(t, s.ProcessFileHandler, ProcessFileRequest{DocumentID: "doc1", Path: path})
	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
}

func TestProcessFileHandler_UnsupportedFormat(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.ProcessFileHandler, ProcessFileRequest{DocumentID: "doc1", Path: "ruling.pdf"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestSearchHandler(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.ProcessDocumentHandler, ProcessRequest{
		DocumentID: "doc1",
		Content:    "The agreement binds both parties. The plaintiff seeks damages.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, s.SearchHandler, SearchRequest{Query: "damages", TopK: 3})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "damages", resp.Query)
	require.NotEmpty(t, resp.Results)
	assert.LessOrEqual(t, len(resp.Results), 3)
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.SearchHandler, SearchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
