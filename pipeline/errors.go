package pipeline

import "errors"

var (
	// ErrEmptyContent: content present but blank after normalization. Fatal
	// for the document, surfaced as a failed Result.
	ErrEmptyContent = errors.New("document has no usable content after normalization")

	// ErrExtractionFailed: no usable text obtained from the source document.
	ErrExtractionFailed = errors.New("no usable text extracted from document")

	// ErrInvalidConfig: size/threshold values rejected before processing starts.
	ErrInvalidConfig = errors.New("invalid pipeline configuration")
)
