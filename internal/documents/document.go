// Package documents implements the scanned agreement document domain.
// It covers upload, registration, blob storage integration, and
// extraction status tracking for rental agreement PDFs.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Extraction status values for a registered document.
const (
	StatusPending   = "pending"
	StatusExtracted = "extracted"
	StatusFailed    = "failed"
)

// Document represents a registered agreement scan with its metadata
// and blob storage reference.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes. PageCount is optional and
// may be extracted by the caller via pdfcpu; nil is stored as NULL.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
}
