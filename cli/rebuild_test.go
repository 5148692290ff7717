package cli

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goto/pgsearch/core/searchable"
	"github.com/goto/pgsearch/internal/entity"
	"github.com/goto/pgsearch/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.NewClientWithDB(db), mock
}

func postEntity(mode entity.Mode) entity.Config {
	return entity.Config{
		Name:  "Post",
		Table: "posts",
		Mode:  mode,
		Against: []entity.Field{
			{Name: "title"},
			{Name: "body", Weight: "B"},
		},
	}
}

func TestRebuildEmbedded(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "body", "title" FROM "posts" ORDER BY "id" LIMIT 10`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "title"}).AddRow(int64(1), "world", "Hello"))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ((setweight(to_tsvector($1::regconfig, $2), $3::"char")`)).
		WithArgs(searchable.DefaultLanguage, "Hello", "A", searchable.DefaultLanguage, "world", "B").
		WillReturnRows(sqlmock.NewRows([]string{"tsv"}).AddRow("'hello':1A 'world':2B"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "tsv" = $1::tsvector WHERE "id" = $2`)).
		WithArgs("'hello':1A 'world':2B", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := rebuild(context.Background(), log.NewNoop(), client, postEntity(entity.ModeEmbedded), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, [][]string{
		{"ENTITY", "Post"},
		{"MODE", "embedded"},
		{"ROWS", "1"},
	}, res.table())
}

func TestRebuildMultisearch(t *testing.T) {
	client, mock := newMockClient(t)
	documentColumns := []string{"id", "searchable_type", "searchable_id", "content", "tsv", "attributes", "created_at", "updated_at"}
	findSQL := regexp.QuoteMeta(`FROM pg_search_documents WHERE (searchable_type = $1 AND searchable_id = $2) LIMIT 1`)

	now := time.Now().UTC()

	cfg := postEntity(entity.ModeMultisearch)
	cfg.If = []string{"published"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pg_search_documents WHERE searchable_type = $1`)).
		WithArgs("Post").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "body", "published", "title" FROM "posts" ORDER BY "id" LIMIT 2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "published", "title"}).
			AddRow(int64(1), "world", true, "Hello").
			AddRow(int64(2), "draft", false, "Unpublished"))

	mock.ExpectQuery(findSQL).WithArgs("Post", "1").WillReturnRows(sqlmock.NewRows(documentColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ((setweight(to_tsvector($1::regconfig, $2), $3::"char")`)).
		WithArgs(searchable.DefaultLanguage, "Hello", "A", searchable.DefaultLanguage, "world", "B").
		WillReturnRows(sqlmock.NewRows([]string{"tsv"}).AddRow("'hello':1A 'world':2B"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO pg_search_documents`)).
		WithArgs("Post", "1", "Hello world", "'hello':1A 'world':2B", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
	mock.ExpectQuery(findSQL).WithArgs("Post", "2").WillReturnRows(sqlmock.NewRows(documentColumns))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "body", "published", "title" FROM "posts" WHERE "id" > $1 ORDER BY "id" LIMIT 2`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "published", "title"}))
	mock.ExpectCommit()

	res, err := rebuild(context.Background(), log.NewNoop(), client, cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.EqualValues(t, 4, res.Deleted)
	assert.Equal(t, map[searchable.Action]int{
		searchable.ActionCreate:   1,
		searchable.ActionNoChange: 1,
	}, res.Actions)
	assert.Equal(t, [][]string{
		{"ENTITY", "Post"},
		{"MODE", "multisearch"},
		{"ROWS", "2"},
		{"DELETED", "4"},
		{"create", "1"},
		{"no_change", "1"},
	}, res.table())
}

func TestRebuildRollsBackOnFailure(t *testing.T) {
	client, mock := newMockClient(t)

	cfg := postEntity(entity.ModeMultisearch)
	cfg.If = []string{"published"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pg_search_documents WHERE searchable_type = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "posts" ORDER BY "id" LIMIT 2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "title"}).
			AddRow(int64(1), "world", "Hello"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM pg_search_documents`)).
		WithArgs("Post", "1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := rebuild(context.Background(), log.NewNoop(), client, cfg, 2)

	var missing entity.MissingColumnError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "published", missing.Column)
}

func TestRebuildInvalidEntity(t *testing.T) {
	client, _ := newMockClient(t)

	_, err := rebuild(context.Background(), log.NewNoop(), client, entity.Config{Name: "Post"}, 2)
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)
}
