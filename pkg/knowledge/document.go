// Package knowledge holds the legal passages the assistant answers from.
package knowledge

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

// ErrNotFound is returned when a store holds no documents.
var ErrNotFound = errors.New("no documents found")

// ErrMalformed marks a document file whose content cannot be parsed.
var ErrMalformed = errors.New("malformed document")

// Document is one retrievable passage.
type Document struct {
	ID       uuid.UUID     `json:"id" yaml:"id"`
	Content  string        `json:"content" yaml:"content"`
	Source   string        `json:"source" yaml:"source"`
	Language language.Code `json:"language" yaml:"language"`
}

// Store persists documents.
type Store interface {
	List(ctx context.Context) ([]Document, error)
	Upsert(ctx context.Context, docs []Document) error
}

// documentNamespace scopes content-derived document IDs.
var documentNamespace = uuid.MustParse("6f1d2c3a-8b0e-4f57-9a51-3c1e0d7b2a44")

// DocumentID derives a stable ID from source and content so reloading the
// same files upserts instead of duplicating.
func DocumentID(source, content string) uuid.UUID {
	return uuid.NewSHA1(documentNamespace, []byte(source+"\x00"+content))
}

func (d Document) withDefaults() Document {
	if !d.Language.Valid() {
		d.Language = language.English
	}
	if d.ID == uuid.Nil {
		d.ID = DocumentID(d.Source, d.Content)
	}
	return d
}
