package database

import (
	"context"
	"fmt"

	"github.com/webaplicationjsx/warehouse-backend/pkg/logger"
)

// Tables are created in this order on every startup. Existing tables are left untouched.
var schema = []struct {
	table string
	ddl   string
}{
	{
		table: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL
		)`,
	},
	{
		table: "schedule",
		ddl: `CREATE TABLE IF NOT EXISTS schedule (
			id SERIAL PRIMARY KEY,
			data JSONB,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
	},
	{
		table: "shipment",
		ddl: `CREATE TABLE IF NOT EXISTS shipment (
			id SERIAL PRIMARY KEY,
			data JSONB,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
	},
	{
		table: "miscellaneous",
		ddl: `CREATE TABLE IF NOT EXISTS miscellaneous (
			id SERIAL PRIMARY KEY,
			data JSONB,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
	},
}

// Bootstrap makes sure every table the API serves exists.
// It must return before the HTTP listener is started.
func Bootstrap(ctx context.Context, db Database) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", s.table, err)
		}
	}

	logger.Info("Tables verified/created successfully")

	return nil
}
