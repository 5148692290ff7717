package postgres_test

import (
	"testing"

	"github.com/goto/pgsearch/internal/store/postgres"
	"github.com/goto/pgsearch/internal/testutils"
	"github.com/goto/salt/log"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

func newTestClient(t *testing.T, logger log.Logger) (*postgres.Client, *sqlx.DB, error) {
	t.Helper()

	port, err := testutils.RunTestPG(t, logger)
	if err != nil {
		return nil, nil, err
	}

	cfg := testutils.PGConfig(port)
	pgClient, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := testutils.RunMigrationsWithClient(t, pgClient); err != nil {
		return nil, nil, err
	}

	// raw handle for assertions made outside the repositories
	db, err := sqlx.Connect("pgx", cfg.ConnectionURL().String())
	if err != nil {
		return nil, nil, err
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatal(err)
		}
		if err := pgClient.Close(); err != nil {
			t.Fatal(err)
		}
	})

	return pgClient, db, nil
}
