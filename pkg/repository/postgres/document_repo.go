package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/language"
)

// DocumentRepository implements knowledge.Store backed by PostgreSQL (pgx).
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	repo := &DocumentRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *DocumentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS legal_documents (
			id UUID PRIMARY KEY,
			content TEXT NOT NULL,
			source TEXT NOT NULL,
			language TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS legal_documents_language_idx ON legal_documents (language);
	`)
	return err
}

// Upsert writes all documents in one batch.
func (r *DocumentRepository) Upsert(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, d := range docs {
		batch.Queue(`
			INSERT INTO legal_documents (id, content, source, language, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET content = EXCLUDED.content, source = EXCLUDED.source,
			    language = EXCLUDED.language, updated_at = EXCLUDED.updated_at
		`, d.ID, d.Content, d.Source, d.Language.String(), now)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *DocumentRepository) List(ctx context.Context) ([]knowledge.Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content, source, language
		FROM legal_documents ORDER BY source, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []knowledge.Document
	for rows.Next() {
		var d knowledge.Document
		var lang string
		if err := rows.Scan(&d.ID, &d.Content, &d.Source, &lang); err != nil {
			return nil, err
		}
		d.Language = language.Code(lang)
		out = append(out, d)
	}
	return out, rows.Err()
}
