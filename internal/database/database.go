package database

import (
	"context"
	"database/sql"
)

// Database is the process-scoped handle every repository issues its statements through.
type Database interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) (*sql.Row, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Close() error
}
