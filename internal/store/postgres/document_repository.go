package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/pgsearch/core/searchable"
)

const documentsTable = "pg_search_documents"

// DocumentRepository stores satellite search documents in
// pg_search_documents, one row per searchable record.
type DocumentRepository struct {
	client *Client
}

func NewDocumentRepository(c *Client) (*DocumentRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &DocumentRepository{client: c}, nil
}

func (r *DocumentRepository) Find(ctx context.Context, searchableType, searchableID string) (searchable.Document, error) {
	query, args, err := sq.Select(
		"id", "searchable_type", "searchable_id", "content",
		"tsv::text AS tsv", "attributes", "created_at", "updated_at",
	).
		From(documentsTable).
		Where(searchableKey(searchableType, searchableID)).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return searchable.Document{}, fmt.Errorf("error building find document query: %w", err)
	}

	var dm DocumentModel
	if err := r.client.executor(ctx).GetContext(ctx, &dm, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return searchable.Document{}, fmt.Errorf("%w: %s %q", searchable.ErrDocumentNotFound, searchableType, searchableID)
		}
		return searchable.Document{}, fmt.Errorf("error getting document of %s %q: %w", searchableType, searchableID, err)
	}
	return dm.toDocument(), nil
}

// Create inserts doc. A document already stored for the same record is
// overwritten, so the last committed write wins.
func (r *DocumentRepository) Create(ctx context.Context, doc searchable.Document) (searchable.Document, error) {
	now := time.Now().UTC()
	query, args, err := sq.Insert(documentsTable).
		Columns("searchable_type", "searchable_id", "content", "tsv", "attributes", "created_at", "updated_at").
		Values(
			doc.SearchableType, doc.SearchableID, doc.Content,
			sq.Expr("?::tsvector", doc.Vector.String()),
			JSONMap(doc.Attributes), now, now,
		).
		Suffix("ON CONFLICT (searchable_type, searchable_id) DO UPDATE SET " +
			"content = EXCLUDED.content, tsv = EXCLUDED.tsv, " +
			"attributes = EXCLUDED.attributes, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return searchable.Document{}, fmt.Errorf("error building insert document query: %w", err)
	}

	if err := r.client.executor(ctx).QueryRowxContext(ctx, query, args...).
		Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return searchable.Document{}, fmt.Errorf("error creating document of %s %q: %w",
			doc.SearchableType, doc.SearchableID, checkPostgresError(err))
	}
	return doc, nil
}

func (r *DocumentRepository) Update(ctx context.Context, doc searchable.Document) error {
	query, args, err := sq.Update(documentsTable).
		SetMap(map[string]interface{}{
			"content":    doc.Content,
			"tsv":        sq.Expr("?::tsvector", doc.Vector.String()),
			"attributes": JSONMap(doc.Attributes),
			"updated_at": time.Now().UTC(),
		}).
		Where(searchableKey(doc.SearchableType, doc.SearchableID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update document query: %w", err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating document of %s %q: %w", doc.SearchableType, doc.SearchableID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %q", searchable.ErrDocumentNotFound, doc.SearchableType, doc.SearchableID)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, searchableType, searchableID string) error {
	query, args, err := sq.Delete(documentsTable).
		Where(searchableKey(searchableType, searchableID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete document query: %w", err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error deleting document of %s %q: %w", searchableType, searchableID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %q", searchable.ErrDocumentNotFound, searchableType, searchableID)
	}
	return nil
}

func (r *DocumentRepository) DeleteByType(ctx context.Context, searchableType string) (int64, error) {
	query, args, err := sq.Delete(documentsTable).
		Where(sq.Eq{"searchable_type": searchableType}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building delete documents query: %w", err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("error deleting %s documents: %w", searchableType, err)
	}
	return affected, nil
}

func (r *DocumentRepository) exec(ctx context.Context, query string, args []interface{}) (int64, error) {
	res, err := r.client.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, checkPostgresError(err)
	}
	return res.RowsAffected()
}

func searchableKey(searchableType, searchableID string) sq.And {
	return sq.And{
		sq.Eq{"searchable_type": searchableType},
		sq.Eq{"searchable_id": searchableID},
	}
}
