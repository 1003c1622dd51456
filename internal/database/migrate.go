package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Statements are idempotent so Migrate can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL UNIQUE,
		category text NOT NULL DEFAULT '',
		price_per_liter numeric(10,2) NOT NULL DEFAULT 0,
		stock_liters numeric(10,2) NOT NULL DEFAULT 0 CHECK (stock_liters >= 0),
		active boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name text NOT NULL DEFAULT '',
		last_name text NOT NULL DEFAULT '',
		phone text NOT NULL DEFAULT '',
		tax_id text NOT NULL DEFAULT 'CF',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id uuid NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
		status text NOT NULL DEFAULT 'draft',
		total numeric(12,2) NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now(),
		confirmed_at timestamptz
	)`,

	`CREATE TABLE IF NOT EXISTS sale_lines (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		sale_id uuid NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
		product_id uuid NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
		liters numeric(10,2) NOT NULL DEFAULT 0,
		unit_price numeric(10,2) NOT NULL DEFAULT 0,
		subtotal numeric(10,2) NOT NULL DEFAULT 0,
		position int NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_sale_id ON sale_lines (sale_id)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration: %w", err)
		}
	}

	return nil
}
