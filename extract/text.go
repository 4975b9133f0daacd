package extract

import (
	"fmt"
	"os"
	"strings"
)

// TextExtractor reads plain-text files as-is.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Extract(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	return &Result{
		Content:          content,
		ParagraphCount:   countParagraphs(content),
		ExtractionMethod: "plain_text",
	}, nil
}

func countParagraphs(content string) int {
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
