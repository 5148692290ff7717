package cli

import (
	"fmt"
	"os"

	"github.com/goto/pgsearch/internal/store/postgres"
	"github.com/goto/salt/log"
)

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

func initPostgres(logger log.Logger, cfg *Config) (*postgres.Client, error) {
	pgClient, err := postgres.NewClient(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	logger.Info("connected to postgres server", "host", cfg.DB.Host, "port", cfg.DB.Port)

	return pgClient, nil
}
