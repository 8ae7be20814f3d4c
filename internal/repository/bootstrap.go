package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/machinehub/discovery-pipeline/gen/ent"
	"github.com/machinehub/discovery-pipeline/internal/common"
)

// DBHandle bundles the opened client with its cleanup.
type DBHandle struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either Postgres (via the pgx pool) or an in-memory
// SQLite database. The SQLite path creates the schema on the fly, which makes
// offline batch runs self-contained.
func InitDatabase(ctx context.Context, cfg common.DatabaseConfig, inmem bool, logger *slog.Logger) (*DBHandle, error) {
	if inmem {
		client, err := OpenSQLite("", logger)
		if err != nil {
			return nil, err
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, common.WrapError(err, "create sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DBHandle{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:              cfg.DSN,
		MaxConns:         cfg.MaxConns,
		MinConns:         cfg.MinConns,
		MaxConnLifetime:  cfg.MaxConnLifetime,
		MaxConnIdleTime:  cfg.MaxConnIdleTime,
		DialTimeout:      cfg.DialTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBHandle{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}
