package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationsFS embed.FS

// Dialect carries the per-engine SQL the runner needs.
type Dialect struct {
	Name         string
	dir          string
	historyTable string
	appliedQuery string
	recordQuery  string
}

var (
	SQLite = Dialect{
		Name: "sqlite",
		dir:  "sql/sqlite",
		historyTable: `
			CREATE TABLE IF NOT EXISTS migrations_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
		appliedQuery: "SELECT COUNT(*) FROM migrations_history WHERE name = ?",
		recordQuery:  "INSERT INTO migrations_history (name) VALUES (?)",
	}
	Postgres = Dialect{
		Name: "postgres",
		dir:  "sql/postgres",
		historyTable: `
			CREATE TABLE IF NOT EXISTS migrations_history (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				applied_at TIMESTAMPTZ DEFAULT NOW()
			)`,
		appliedQuery: "SELECT COUNT(*) FROM migrations_history WHERE name = $1",
		recordQuery:  "INSERT INTO migrations_history (name) VALUES ($1)",
	}
)

// Executor is the minimal surface the runner needs from a database handle.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) error
	QueryInt(ctx context.Context, query string, args ...any) (int, error)
}

// Apply runs every embedded migration for d that has not been recorded yet,
// in lexical filename order.
func Apply(ctx context.Context, db Executor, d Dialect) error {
	if err := db.Exec(ctx, d.historyTable); err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}

	names, err := Files(d)
	if err != nil {
		return err
	}

	for _, name := range names {
		count, err := db.QueryInt(ctx, d.appliedQuery, name)
		if err != nil {
			return fmt.Errorf("checking if migration applied: %w", err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join(d.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		for stmt := range strings.SplitSeq(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", name, err)
			}
		}

		if err := db.Exec(ctx, d.recordQuery, name); err != nil {
			return fmt.Errorf("recording migration: %w", err)
		}
	}

	return nil
}

// Files lists the migration filenames for d in the order Apply runs them.
func Files(d Dialect) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

type sqlExecutor struct{ db *sql.DB }

// SQL adapts a database/sql handle.
func SQL(db *sql.DB) Executor { return sqlExecutor{db: db} }

func (e sqlExecutor) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.db.ExecContext(ctx, query, args...)
	return err
}

func (e sqlExecutor) QueryInt(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := e.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

type pgxExecutor struct{ pool *pgxpool.Pool }

// Pgx adapts a pgx connection pool.
func Pgx(pool *pgxpool.Pool) Executor { return pgxExecutor{pool: pool} }

func (e pgxExecutor) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.pool.Exec(ctx, query, args...)
	return err
}

func (e pgxExecutor) QueryInt(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := e.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
