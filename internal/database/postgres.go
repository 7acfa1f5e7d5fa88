package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDB owns the connection pool backing the category and vendor card
// queries.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// Seams for tests.
var (
	parsePGConfig = pgxpool.ParseConfig
	newPGPool     = pgxpool.NewWithConfig
	pingPGPool    = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
	closePGPool   = func(pool *pgxpool.Pool) { pool.Close() }
)

const (
	pgMaxConns          = 25
	pgMinConns          = 5
	pgMaxConnLifetime   = time.Hour
	pgMaxConnIdleTime   = 30 * time.Minute
	pgHealthCheckPeriod = time.Minute
	pgConnectTimeout    = 10 * time.Second
)

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	config, err := parsePGConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	// A recommendation request fans out one query per category, so keep a
	// few warm connections around.
	config.MaxConns = pgMaxConns
	config.MinConns = pgMinConns
	config.MaxConnLifetime = pgMaxConnLifetime
	config.MaxConnIdleTime = pgMaxConnIdleTime
	config.HealthCheckPeriod = pgHealthCheckPeriod

	ctx, cancel := context.WithTimeout(context.Background(), pgConnectTimeout)
	defer cancel()

	pool, err := newPGPool(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pingPGPool(ctx, pool); err != nil {
		closePGPool(pool)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		closePGPool(db.Pool)
	}
}

// Health satisfies handlers.HealthChecker.
func (db *PostgresDB) Health(ctx context.Context) error {
	return pingPGPool(ctx, db.Pool)
}
