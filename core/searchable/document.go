package searchable

import (
	"context"
	"time"
)

// Document is the satellite search record of a searchable record.
type Document struct {
	ID             int64          `json:"id"`
	SearchableType string         `json:"searchable_type"`
	SearchableID   string         `json:"searchable_id"`
	Content        string         `json:"content"`
	Vector         Vector         `json:"tsv"`
	Attributes     map[string]any `json:"attributes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

//go:generate mockery --name=DocumentRepository -r --case underscore --with-expecter --structname DocumentRepository --filename document_repository.go --output=./mocks

// DocumentRepository persists satellite documents, at most one per
// (searchable type, searchable id).
type DocumentRepository interface {
	// Find returns ErrDocumentNotFound when the record has no document.
	Find(ctx context.Context, searchableType, searchableID string) (Document, error)
	// Create stores doc, replacing any document of the same record.
	Create(ctx context.Context, doc Document) (Document, error)
	// Update returns ErrDocumentNotFound when the document no longer exists.
	Update(ctx context.Context, doc Document) error
	// Delete returns ErrDocumentNotFound when there is nothing to delete.
	Delete(ctx context.Context, searchableType, searchableID string) error
	DeleteByType(ctx context.Context, searchableType string) (int64, error)
}

// ColumnTarget locates the tsvector column of an embedded-mode record.
type ColumnTarget struct {
	Table  string
	Key    string
	Column string
}

//go:generate mockery --name=ColumnWriter -r --case underscore --with-expecter --structname ColumnWriter --filename column_writer.go --output=./mocks

type ColumnWriter interface {
	// WriteVector returns ErrRecordNotFound when no row matches id.
	WriteVector(ctx context.Context, target ColumnTarget, id string, v Vector) error
}
