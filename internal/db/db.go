// Package db provides a pgxpool-based connection pool with prepared statement
// registration, read-only sessions and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// Mode selects how pooled connections are set up.
type Mode int

const (
	// ReadOnly sessions reject writes and have every aggregation statement
	// prepared. The dashboard and exports use this mode.
	ReadOnly Mode = iota
	// ReadWrite sessions are plain connections for migrations and loading;
	// nothing is prepared because the schema may not exist yet.
	ReadWrite
)

// Pool wraps pgxpool.Pool with application-specific helpers. It is created
// once per process and closed on exit.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool. A failure here is a
// connection error: callers should not serve anything without a store.
func New(ctx context.Context, cfg *config.Config, mode Mode) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "football-dashboard"

	if mode == ReadOnly {
		poolCfg.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"

		// Register prepared statements on every new connection.
		poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			return registerPreparedStatements(ctx, conn)
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "SELECT 1").Scan(&n)
}

// registerPreparedStatements registers every statement of the aggregation
// query library under its statement name.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range query.Statements() {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
