package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qrsafety/sds-pipeline/gen/ent"
	"github.com/qrsafety/sds-pipeline/internal/repository"

	_ "modernc.org/sqlite"
)

// DBResult bundles an open Ent client with its cleanup hook.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite database. The SQLite path also runs schema migration
// so one-shot CLI runs work against an empty store.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		logger.Info("using in-memory sqlite database")
		db, err := sql.Open("sqlite", "file:sds?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, WrapError(err, "open sqlite")
		}
		// cache=shared keeps the memory database alive across pooled conns
		db.SetMaxOpenConns(1)

		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "migrate sqlite schema")
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
