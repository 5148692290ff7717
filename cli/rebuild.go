package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/pgsearch/core/searchable"
	"github.com/goto/pgsearch/internal/entity"
	"github.com/goto/pgsearch/internal/store/postgres"
	"github.com/goto/pgsearch/pkg/searchmw"
	"github.com/goto/pgsearch/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/goto/salt/printer"
	"github.com/spf13/cobra"
)

func rebuildCommand(cfg *Config) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "rebuild <entity>",
		Short: "Recompute search vectors of every row of an entity",
		Long: heredoc.Doc(`
			Recompute the search vector of every row of a configured entity.

			Embedded entities get their vector column rewritten batch by batch.
			Multisearch entities get all their documents dropped and rebuilt in a
			single transaction, whether or not multisearch is enabled.
		`),
		Example: heredoc.Doc(`
			$ pgsearch rebuild Post
			$ pgsearch rebuild Post --batch-size 1000
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize <= 0 {
				batchSize = cfg.Rebuild.BatchSize
			}
			res, err := runRebuild(cmd.Context(), cfg, args[0], batchSize)
			if err != nil {
				return err
			}

			printer.Table(os.Stdout, res.table())
			return nil
		},
	}

	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0, "Rows read per batch, defaults to rebuild.batch_size")

	return cmd
}

type rebuildResult struct {
	Entity  string
	Mode    entity.Mode
	Rows    int
	Deleted int64
	Actions map[searchable.Action]int
}

func (r rebuildResult) table() [][]string {
	rows := [][]string{
		{"ENTITY", r.Entity},
		{"MODE", string(r.Mode)},
		{"ROWS", strconv.Itoa(r.Rows)},
	}
	if r.Mode != entity.ModeMultisearch {
		return rows
	}

	rows = append(rows, []string{"DELETED", strconv.FormatInt(r.Deleted, 10)})
	for _, a := range []searchable.Action{searchable.ActionCreate, searchable.ActionNoChange} {
		rows = append(rows, []string{a.String(), strconv.Itoa(r.Actions[a])})
	}
	return rows
}

func runRebuild(ctx context.Context, cfg *Config, name string, batchSize int) (rebuildResult, error) {
	ec, err := entity.Lookup(cfg.Entities, name)
	if err != nil {
		return rebuildResult{}, err
	}

	logger := initLogger(cfg.LogLevel)
	logger.Info("pgsearch is rebuilding", "version", Version, "entity", ec.Name, "mode", ec.Mode)

	cfg.Telemetry.AppVersion = Version
	cleanUp, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return rebuildResult{}, err
	}
	defer cleanUp()

	pgClient, err := initPostgres(logger, cfg)
	if err != nil {
		return rebuildResult{}, err
	}
	defer pgClient.Close()

	if ec.Mode == entity.ModeMultisearch && !cfg.Multisearch.Enabled {
		logger.Warn("multisearch is disabled, documents will not follow saves until it is enabled", "entity", ec.Name)
	}

	return rebuild(ctx, logger, pgClient, ec, batchSize)
}

func rebuild(ctx context.Context, logger log.Logger, pgClient *postgres.Client, ec entity.Config, batchSize int) (rebuildResult, error) {
	res := rebuildResult{
		Entity:  ec.Name,
		Mode:    ec.Mode,
		Actions: make(map[searchable.Action]int),
	}

	def, err := ec.Definition()
	if err != nil {
		return res, err
	}

	vc, err := postgres.NewVectorCompiler(pgClient)
	if err != nil {
		return res, err
	}
	compiler := searchmw.WithCompilerInstrumentation()(vc)

	rows, err := postgres.NewRowSource(pgClient)
	if err != nil {
		return res, err
	}
	q := postgres.RowQuery{
		Table:     ec.Table,
		Key:       ec.KeyColumn(),
		Columns:   ec.Columns(),
		BatchSize: batchSize,
	}

	switch ec.Mode {
	case entity.ModeEmbedded:
		res.Rows, err = rebuildEmbedded(ctx, logger, pgClient, rows, q, def, compiler)
	case entity.ModeMultisearch:
		err = rebuildMultisearch(ctx, logger, pgClient, rows, q, def, compiler, &res)
	default:
		err = fmt.Errorf("%w: unknown mode %q", entity.ErrInvalidConfig, ec.Mode)
	}
	if err != nil {
		return res, fmt.Errorf("rebuild %s: %w", ec.Name, err)
	}

	logger.Info("rebuild done", "entity", ec.Name, "rows", res.Rows, "deleted", res.Deleted)
	return res, nil
}

// rebuildEmbedded commits one transaction per batch, so an interrupted run
// keeps the batches already written.
func rebuildEmbedded(
	ctx context.Context, logger log.Logger, pgClient *postgres.Client, rows *postgres.RowSource,
	q postgres.RowQuery, def searchable.Definition[entity.Row], compiler searchable.Compiler,
) (int, error) {
	writer, err := postgres.NewColumnRepository(pgClient)
	if err != nil {
		return 0, err
	}
	sync, err := searchable.NewSynchronizer(def, compiler, writer,
		searchable.WithSynchronizerLogger[entity.Row](logger),
	)
	if err != nil {
		return 0, err
	}

	return rows.Scan(ctx, q, func(ctx context.Context, batch []map[string]interface{}) error {
		return pgClient.RunWithinTx(ctx, func(ctx context.Context) error {
			for _, rec := range toRecords(batch) {
				if err := sync.Sync(ctx, rec); err != nil {
					return err
				}
			}
			logger.Debug("batch synced", "entity", def.Type, "rows", len(batch))
			return nil
		})
	})
}

func rebuildMultisearch(
	ctx context.Context, logger log.Logger, pgClient *postgres.Client, rows *postgres.RowSource,
	q postgres.RowQuery, def searchable.Definition[entity.Row], compiler searchable.Compiler, res *rebuildResult,
) error {
	docs, err := postgres.NewDocumentRepository(pgClient)
	if err != nil {
		return err
	}
	manager, err := searchable.NewDocumentManager(def, compiler,
		searchmw.WithDocumentRepositoryInstrumentation()(docs),
		searchable.WithDocumentManagerLogger[entity.Row](logger),
	)
	if err != nil {
		return err
	}

	return pgClient.RunWithinTx(ctx, func(ctx context.Context) error {
		deleted, err := manager.Reset(ctx)
		if err != nil {
			return err
		}

		total, err := rows.Scan(ctx, q, func(ctx context.Context, batch []map[string]interface{}) error {
			return manager.Reindex(ctx, toRecords(batch), res.Actions)
		})
		if err != nil {
			return err
		}

		res.Deleted, res.Rows = deleted, total
		return nil
	})
}

func toRecords(rows []map[string]interface{}) []entity.Row {
	recs := make([]entity.Row, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, entity.Row(r))
	}
	return recs
}
