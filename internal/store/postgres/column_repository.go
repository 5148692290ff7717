package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/pgsearch/core/searchable"
)

// ColumnRepository writes compiled vectors onto the searchable records'
// own tsvector columns.
type ColumnRepository struct {
	client *Client
}

func NewColumnRepository(c *Client) (*ColumnRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &ColumnRepository{client: c}, nil
}

func (r *ColumnRepository) WriteVector(ctx context.Context, target searchable.ColumnTarget, id string, v searchable.Vector) error {
	if target.Table == "" || target.Key == "" || target.Column == "" {
		return fmt.Errorf("%w: incomplete column target %+v", searchable.ErrInvalidDefinition, target)
	}

	query, args, err := sq.Update(quoteIdent(target.Table)).
		Set(quoteIdent(target.Column), sq.Expr("?::tsvector", v.String())).
		Where(sq.Eq{quoteIdent(target.Key): id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update vector query: %w", err)
	}

	res, err := r.client.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating %s.%s: %w", target.Table, target.Column, checkPostgresError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s = %q", searchable.ErrRecordNotFound, target.Table, target.Key, id)
	}
	return nil
}
