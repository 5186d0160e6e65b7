// Command footballctl manages the football database: schema migrations,
// CSV loading and exports of the query views.
//
// Usage:
//
//	footballctl migrate
//	footballctl load equipe --file data/equipe.csv
//	footballctl load-all --dir data/
//	footballctl count
//	footballctl export players --team Arsenal --out players.csv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/analytics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/db"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/export"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/ingest"
)

// Logs go to stderr so an export can stream CSV on stdout.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "footballctl",
		Short:        "Football database management CLI",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(loadCmd())
	root.AddCommand(loadAllCmd())
	root.AddCommand(countCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(db.ReadWrite, func(ctx context.Context, _ *config.Config, pool *db.Pool) error {
				return db.Migrate(ctx, pool, logger)
			})
		},
	}
}

// --------------------------------------------------------------------------
// load commands
// --------------------------------------------------------------------------

func loadCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:       "load <table>",
		Short:     "Clean a CSV file and append it to a table",
		Long:      "Loadable tables, in dependency order: " + strings.Join(ingest.Tables(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: ingest.Tables(),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			if _, err := ingest.Lookup(table); err != nil {
				return err
			}
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			return withPool(db.ReadWrite, func(ctx context.Context, _ *config.Config, pool *db.Pool) error {
				_, err := loadFile(ctx, pool, table, file)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "CSV file to load, - for stdin")
	return cmd
}

func loadAllCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "load-all",
		Short: "Load <table>.csv for every table found in a directory, in dependency order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(db.ReadWrite, func(ctx context.Context, _ *config.Config, pool *db.Pool) error {
				start := time.Now()
				loaded := 0
				for _, table := range ingest.Tables() {
					path := filepath.Join(dir, table+".csv")
					if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
						logger.Info("No file for table, skipping", "table", table, "path", path)
						continue
					}
					if _, err := loadFile(ctx, pool, table, path); err != nil {
						return err
					}
					loaded++
				}
				logger.Info("Load finished", "tables", loaded, "duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory holding <table>.csv files")
	return cmd
}

// loadFile loads one file in its own transaction.
func loadFile(ctx context.Context, pool *db.Pool, table, path string) (ingest.LoadResult, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return ingest.LoadResult{Table: table}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var res ingest.LoadResult
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		res, err = ingest.Load(ctx, tx, table, r, logger)
		return err
	})
	if err != nil {
		logger.Error("Load failed", "table", table, "path", path, "error", err)
		return res, err
	}
	return res, nil
}

// --------------------------------------------------------------------------
// count command
// --------------------------------------------------------------------------

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [table...]",
		Short: "Print row counts, of every loadable table by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := args
			if len(tables) == 0 {
				tables = ingest.Tables()
			}
			return withPool(db.ReadWrite, func(ctx context.Context, _ *config.Config, pool *db.Pool) error {
				out := cmd.OutOrStdout()
				for _, table := range tables {
					n, err := ingest.Count(ctx, pool, table)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%-20s %d\n", table, n)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

func exportCmd() *cobra.Command {
	var (
		team  string
		limit int
		out   string
	)
	cmd := &cobra.Command{
		Use:       "export <view>",
		Short:     "Write a query view as CSV",
		Long:      "Views: " + strings.Join(analytics.ExportViews, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: analytics.ExportViews,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := args[0]
			return withPool(db.ReadOnly, func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				svc := analytics.New(pool, analytics.OptionsFromConfig(cfg), logger)
				table, err := analytics.ExportTable(ctx, svc, analytics.ExportRequest{View: view, Team: team, Limit: limit})
				if err != nil {
					return err
				}

				var w io.Writer = cmd.OutOrStdout()
				if out != "" {
					if out == "." {
						out = export.FileName(view, time.Now())
					}
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				if err := export.WriteCSV(w, table); err != nil {
					return err
				}
				if out != "" {
					logger.Info("Export written", "view", view, "rows", table.Len(), "file", out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team filter (players, matches, team-performance)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Row limit for top-scorers (default 10)")
	cmd.Flags().StringVar(&out, "out", "", "Output file; . names it <view>_<date>.csv; stdout when empty")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// withPool handles config loading, DB connection, and context cancellation.
func withPool(mode db.Mode, fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg, mode)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
