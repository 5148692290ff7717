package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const defaultBatchSize = 500

type RowQuery struct {
	Table     string
	Key       string
	Columns   []string
	BatchSize int
}

// RowSource reads arbitrary tables in key order, one batch at a time.
type RowSource struct {
	client *Client
}

func NewRowSource(c *Client) (*RowSource, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &RowSource{client: c}, nil
}

// Scan calls fn with consecutive batches of rows until the table is
// exhausted or fn fails. It returns the number of rows read.
func (s *RowSource) Scan(ctx context.Context, q RowQuery, fn func(ctx context.Context, rows []map[string]interface{}) error) (int, error) {
	if q.Table == "" || q.Key == "" {
		return 0, fmt.Errorf("scan rows: table and key are required")
	}
	if q.BatchSize <= 0 {
		q.BatchSize = defaultBatchSize
	}

	var (
		total   int
		lastKey interface{}
	)
	for {
		batch, err := s.batch(ctx, q, lastKey)
		if err != nil {
			return total, err
		}
		if len(batch) == 0 {
			return total, nil
		}

		if err := fn(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)

		if len(batch) < q.BatchSize {
			return total, nil
		}
		lastKey = batch[len(batch)-1][q.Key]
	}
}

func (s *RowSource) batch(ctx context.Context, q RowQuery, after interface{}) ([]map[string]interface{}, error) {
	key := quoteIdent(q.Key)
	columns := []string{key}
	for _, c := range q.Columns {
		if c != q.Key {
			columns = append(columns, quoteIdent(c))
		}
	}

	builder := sq.Select(columns...).
		From(quoteIdent(q.Table)).
		OrderBy(key).
		Limit(uint64(q.BatchSize))
	if after != nil {
		builder = builder.Where(sq.Gt{key: after})
	}
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building scan query: %w", err)
	}

	rows, err := s.client.executor(ctx).QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", q.Table, checkPostgresError(err))
	}
	defer rows.Close()

	var batch []map[string]interface{}
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("error reading %s row: %w", q.Table, err)
		}
		batch = append(batch, row)
	}
	return batch, rows.Err()
}
