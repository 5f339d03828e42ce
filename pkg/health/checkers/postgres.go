// Package checkers holds readiness probes for the backends the API depends on.
package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// checkTimeout bounds a single probe so /ready answers even when a backend hangs.
const checkTimeout = time.Second

// PostgresChecker pings the knowledge store pool.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.pool.Ping(ctx)
}
