package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDatabase implements the Database interface for PostgreSQL.
type PostgresDatabase struct {
	db *sql.DB
}

// PoolOption configures the connection pool of a PostgresDatabase.
type PoolOption func(*sql.DB)

// WithMaxOpenConns limits the number of open connections. Zero or less keeps the driver default.
func WithMaxOpenConns(n int) PoolOption {
	return func(db *sql.DB) {
		if n > 0 {
			db.SetMaxOpenConns(n)
		}
	}
}

// WithMaxIdleConns limits the number of idle connections. Zero or less keeps the driver default.
func WithMaxIdleConns(n int) PoolOption {
	return func(db *sql.DB) {
		if n > 0 {
			db.SetMaxIdleConns(n)
		}
	}
}

// WithConnMaxLifetime sets how long a connection may be reused. Zero or less means forever.
func WithConnMaxLifetime(d time.Duration) PoolOption {
	return func(db *sql.DB) {
		if d > 0 {
			db.SetConnMaxLifetime(d)
		}
	}
}

// NewPostgresDatabase creates a new PostgresDatabase instance with the connection string and context.
// It establishes a connection to the PostgreSQL database and verifies its availability.
func NewPostgresDatabase(ctx context.Context, connectionString string, opts ...PoolOption) (*PostgresDatabase, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	for _, opt := range opts {
		opt(db)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to check database connection: %w", err)
	}

	return &PostgresDatabase{
		db: db,
	}, nil
}

// NewPostgresDatabaseFromDB wraps an already opened pool.
func NewPostgresDatabaseFromDB(db *sql.DB) *PostgresDatabase {
	return &PostgresDatabase{
		db: db,
	}
}

// ExecContext executes a query that doesn't return rows.
func (pdb *PostgresDatabase) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return pdb.db.ExecContext(ctx, query, args...)
}

// QueryRowContext retrieves a single row.
func (pdb *PostgresDatabase) QueryRowContext(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	return pdb.db.QueryRowContext(ctx, query, args...), nil
}

// QueryContext executes a query that returns multiple rows.
func (pdb *PostgresDatabase) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return pdb.db.QueryContext(ctx, query, args...)
}

// Close closes the database connection.
func (pdb *PostgresDatabase) Close() error {
	if err := pdb.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
