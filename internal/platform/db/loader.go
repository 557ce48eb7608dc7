package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/csvout"
)

// Schema is the warehouse schema the loader writes into.
const Schema = "maatritva"

// LoadTables recreates one warehouse table per generated table and bulk
// loads its rows. Columns are text; typing is left to downstream
// analytics. Any failure aborts the load (fail fast, no cleanup).
func LoadTables(ctx context.Context, pool *pgxpool.Pool, tables []csvout.Table) error {
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pgx.Identifier{Schema}.Sanitize())); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for _, t := range tables {
		if err := loadTable(ctx, pool, t); err != nil {
			return err
		}
	}
	return nil
}

func loadTable(ctx context.Context, pool *pgxpool.Pool, t csvout.Table) error {
	qualified := pgx.Identifier{Schema, t.Name}.Sanitize()

	if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", qualified)); err != nil {
		return fmt.Errorf("drop %s: %w", t.Name, err)
	}
	if _, err := pool.Exec(ctx, createStatement(t)); err != nil {
		return fmt.Errorf("create %s: %w", t.Name, err)
	}

	rows := make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		vals := make([]any, len(r))
		for j, v := range r {
			vals[j] = v
		}
		rows[i] = vals
	}

	copied, err := pool.CopyFrom(ctx, pgx.Identifier{Schema, t.Name}, t.Header, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", t.Name, err)
	}
	if copied != int64(len(t.Rows)) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows", t.Name, copied, len(t.Rows))
	}
	return nil
}

func createStatement(t csvout.Table) string {
	cols := make([]string, len(t.Header))
	for i, h := range t.Header {
		cols[i] = pgx.Identifier{h}.Sanitize() + " text"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)",
		pgx.Identifier{Schema, t.Name}.Sanitize(), strings.Join(cols, ", "))
}
