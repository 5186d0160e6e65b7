//go:build integration

// Package testinfra starts disposable PostgreSQL containers for integration
// tests. Run them with: go test -tags integration ./...
package testinfra

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/db"
)

const postgresImage = "postgres:16-alpine"

// SkipIfNoDocker skips the test if the Docker daemon is not reachable.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// Store is a migrated database with a writable pool for fixtures.
type Store struct {
	Config *config.Config
	Writer *db.Pool
}

// StartPostgres runs a fresh container, applies the schema migrations and
// returns a config pointing at it. Everything is torn down with the test.
func StartPostgres(t *testing.T) *Store {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("foot_ball"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.DatabaseURL = dsn

	writer, err := db.New(ctx, cfg, db.ReadWrite)
	require.NoError(t, err)
	t.Cleanup(writer.Close)

	require.NoError(t, db.Migrate(ctx, writer, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return &Store{Config: cfg, Writer: writer}
}

// Exec runs fixture statements on the writable pool.
func (s *Store) Exec(t *testing.T, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		_, err := s.Writer.Exec(context.Background(), stmt)
		require.NoError(t, err, stmt)
	}
}

// Reader opens a read-only pool with every aggregation statement prepared,
// as the dashboard does.
func (s *Store) Reader(t *testing.T) *db.Pool {
	t.Helper()
	reader, err := db.New(context.Background(), s.Config, db.ReadOnly)
	require.NoError(t, err)
	t.Cleanup(reader.Close)
	return reader
}
