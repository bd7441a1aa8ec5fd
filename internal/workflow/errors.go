package workflow

import "errors"

// Workflow stage errors.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrRenderFailed     = errors.New("page rendering failed")
	ErrExtractFailed    = errors.New("lease term extraction failed")
)
