package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/pgsearch/core/searchable"
	"github.com/jackc/pgx/v4"
)

const weightedVectorExpr = `setweight(to_tsvector(?::regconfig, ?), ?::"char")`

// VectorCompiler compiles weighted text into a tsvector with a single
// parameterized query. Text is always bound, never spliced into SQL.
type VectorCompiler struct {
	client *Client
}

func NewVectorCompiler(c *Client) (*VectorCompiler, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &VectorCompiler{client: c}, nil
}

func (vc *VectorCompiler) Compile(ctx context.Context, language string, parts []searchable.WeightedText) (searchable.Vector, error) {
	if len(parts) == 0 {
		return searchable.EmptyVector, nil
	}

	query, args, err := buildVectorSQL(language, parts)
	if err != nil {
		return searchable.EmptyVector, fmt.Errorf("error building vector query: %w", err)
	}

	var tsv sql.NullString
	if err := vc.client.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&tsv); err != nil {
		return searchable.EmptyVector, fmt.Errorf("error compiling vector: %w", checkPostgresError(err))
	}
	return searchable.Vector(tsv.String), nil
}

func buildVectorSQL(language string, parts []searchable.WeightedText) (string, []interface{}, error) {
	if language == "" {
		language = searchable.DefaultLanguage
	}

	exprs := make([]string, 0, len(parts))
	args := make([]interface{}, 0, len(parts)*3)
	for _, p := range parts {
		if !p.Weight.IsValid() {
			return "", nil, fmt.Errorf("%w: %q", searchable.ErrInvalidWeight, p.Weight)
		}
		exprs = append(exprs, weightedVectorExpr)
		args = append(args, language, p.Text, p.Weight.String())
	}

	vector := sq.Expr("("+strings.Join(exprs, " || ")+")::text", args...)
	return sq.Select().
		Column(sq.Alias(vector, "tsv")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// quoteIdent quotes a possibly schema-qualified identifier.
func quoteIdent(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
