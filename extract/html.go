package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"os"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"go.uber.org/zap"
)

// HTMLExtractor pulls main article text out of HTML files. Trafilatura is the
// primary method; readability is the fallback when trafilatura finds nothing.
type HTMLExtractor struct {
	logger *zap.Logger
}

func NewHTMLExtractor(logger *zap.Logger) *HTMLExtractor {
	return &HTMLExtractor{logger: logger}
}

func (e *HTMLExtractor) Extract(path string) (*Result, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sourceURL := &url.URL{Scheme: "file", Path: path}

	if result, err := e.extractWithTrafilatura(body, sourceURL); err == nil {
		result.ParagraphCount = countHTMLParagraphs(body)
		return result, nil
	} else {
		e.logger.Warn("trafilatura extraction failed, trying readability",
			zap.String("path", path),
			zap.Error(err))
	}

	result, err := e.extractWithReadability(body, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", path, err)
	}
	result.ParagraphCount = countHTMLParagraphs(body)
	return result, nil
}

func (e *HTMLExtractor) extractWithTrafilatura(body []byte, sourceURL *url.URL) (*Result, error) {
	opts := trafilatura.Options{
		OriginalURL: sourceURL,
	}
	extracted, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err != nil {
		return nil, err
	}
	if extracted.ContentText == "" {
		return nil, fmt.Errorf("trafilatura produced no text")
	}
	return &Result{
		Content:          extracted.ContentText,
		Title:            extracted.Metadata.Title,
		ExtractionMethod: "trafilatura",
	}, nil
}

func (e *HTMLExtractor) extractWithReadability(body []byte, sourceURL *url.URL) (*Result, error) {
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), sourceURL)
	if err != nil {
		return nil, err
	}
	if article.TextContent == "" {
		return nil, fmt.Errorf("readability produced no text")
	}
	return &Result{
		Content:          article.TextContent,
		Title:            article.Title,
		ExtractionMethod: "readability",
	}, nil
}

func countHTMLParagraphs(body []byte) int {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return 0
	}
	return doc.Find("p").Length()
}
