// Package extract obtains a single content string plus a small metadata
// record from source documents. Extraction is a collaborator of the chunking
// pipeline, not part of it: implementations are swappable behind Extractor.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Result is the extraction record handed to the pipeline.
type Result struct {
	Content          string `json:"content"`
	Title            string `json:"title,omitempty"`
	PageCount        int    `json:"page_count,omitempty"`
	ParagraphCount   int    `json:"paragraph_count,omitempty"`
	ExtractionMethod string `json:"extraction_method"`
}

type Extractor interface {
	Extract(path string) (*Result, error)
}

// Registry routes a file to the extractor registered for its extension.
type Registry struct {
	byExtension map[string]Extractor
}

func NewRegistry() *Registry {
	return &Registry{byExtension: make(map[string]Extractor)}
}

func (r *Registry) Register(extension string, extractor Extractor) {
	r.byExtension[strings.ToLower(extension)] = extractor
}

func (r *Registry) Extract(path string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := r.byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	return extractor.Extract(path)
}
