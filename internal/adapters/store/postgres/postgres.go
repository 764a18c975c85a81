// Package postgres implements the persistence ports on PostgreSQL using
// sqlx for scanning and squirrel for query building. Every query that acts
// on user data is owner-scoped at the SQL level; a row the owner cannot see
// is indistinguishable from a missing row.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/taskmind/taskmind/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(ctx context.Context, dsn string, maxOpenConns int, connMaxLifetime time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return db, nil
}

// HealthChecker reports database availability for the readiness endpoint.
type HealthChecker struct {
	db *sqlx.DB
}

// NewHealthChecker creates a HealthChecker over the given connection pool.
func NewHealthChecker(db *sqlx.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies the component in readiness responses.
func (h *HealthChecker) Name() string {
	return "postgres"
}

// HealthCheck pings the database, respecting the context deadline.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

// translateError maps driver-level failures to domain sentinels. ErrNoRows
// becomes ErrNotFound and unique violations become ErrConflict; anything
// else passes through wrapped.
func translateError(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
