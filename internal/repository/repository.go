// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// A missing row is always reported as pgx.ErrNoRows.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool the repositories use. Tests swap
// in a pgxmock pool.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// exists runs a SELECT EXISTS(...) query.
func exists(ctx context.Context, db Querier, query string, args pgx.NamedArgs) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, args).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// deleteByID deletes one row and reports pgx.ErrNoRows when nothing
// matched.
func deleteByID(ctx context.Context, db Querier, query string, id int64) error {
	tag, err := db.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
