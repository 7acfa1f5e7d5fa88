package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Rows is the cursor returned by DBConn.Query. pgx.Rows satisfies it.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// DBConn is the read surface services need from the database.
type DBConn interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// PoolAdapter exposes a pgxpool.Pool as a DBConn.
type PoolAdapter struct {
	pool *pgxpool.Pool
}

func NewPoolAdapter(pool *pgxpool.Pool) *PoolAdapter {
	return &PoolAdapter{pool: pool}
}

func (a *PoolAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
