package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
			Every config key can be set through an environment variable prefixed
			with PGSEARCH_, nested keys joined by an underscore.

			PGSEARCH_LOG_LEVEL: debug, info, warn or error.

			PGSEARCH_DB_HOST, PGSEARCH_DB_PORT, PGSEARCH_DB_NAME, PGSEARCH_DB_USER,
			PGSEARCH_DB_PASSWORD, PGSEARCH_DB_SSLMODE: Postgres connection.

			PGSEARCH_MULTISEARCH_ENABLED: set to false to stop maintaining
			search documents on save.

			PGSEARCH_REBUILD_BATCH_SIZE: rows read per rebuild batch.

			PGSEARCH_TELEMETRY_OPEN_TELEMETRY_ENABLED: export rebuild metrics
			and traces over OTLP.
		`),
}
