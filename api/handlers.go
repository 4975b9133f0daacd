package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lexchunk/pipeline"
)

type ProcessRequest struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

type ProcessFileRequest struct {
	DocumentID string `json:"document_id"`
	Path       string `json:"path"`
}

type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type SearchResponse struct {
	Query   string                  `json:"query"`
	Results []pipeline.SearchResult `json:"results"`
}

// ProcessDocumentHandler runs the pipeline over already-extracted content.
// Document-level failures come back as a failure record, never a 5xx.
func (s *Server) ProcessDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.DocumentID) == "" {
		http.Error(w, "missing document_id", http.StatusBadRequest)
		return
	}

	result := s.processor.ProcessDocument(r.Context(), req.DocumentID, req.Title, req.Content)
	s.persist(result)
	writeJSON(w, result)
}

// ProcessFileHandler extracts a local file first, then runs the pipeline.
func (s *Server) ProcessFileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProcessFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.DocumentID) == "" || strings.TrimSpace(req.Path) == "" {
		http.Error(w, "missing document_id or path", http.StatusBadRequest)
		return
	}

	extracted, err := s.registry.Extract(req.Path)
	if err != nil {
		writeJSON(w, &pipeline.Result{
			DocumentID:   req.DocumentID,
			Success:      false,
			ErrorMessage: pipeline.ErrExtractionFailed.Error() + ": " + err.Error(),
		})
		return
	}

	result := s.processor.ProcessDocument(r.Context(), req.DocumentID, extracted.Title, extracted.Content)
	s.persist(result)
	writeJSON(w, result)
}

// SearchHandler ranks every stored chunk against the query.
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}
	topK := req.TopK
	if topK == 0 {
		topK = s.processor.Config().TopK
	}

	chunks, err := s.store.AllChunks()
	if err != nil {
		http.Error(w, "failed to load chunks: "+err.Error(), http.StatusInternalServerError)
		return
	}

	results, err := s.matcher.Search(r.Context(), req.Query, chunks, topK)
	if err != nil {
		http.Error(w, "search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, SearchResponse{Query: req.Query, Results: results})
}

// persist saves successful results locally and indexes them; indexing
// problems are logged, not surfaced to the caller.
func (s *Server) persist(result *pipeline.Result) {
	if !result.Success {
		return
	}
	if err := s.store.SaveResult(result); err != nil {
		s.logger.Error("failed to save result",
			zap.String("document_id", result.DocumentID),
			zap.Error(err))
	}
	if s.index != nil {
		if err := s.index.UpsertChunks(context.Background(), result.Chunks); err != nil {
			s.logger.Error("failed to index chunks",
				zap.String("document_id", result.DocumentID),
				zap.Error(err))
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
