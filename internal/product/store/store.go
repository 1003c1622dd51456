package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dsandoval/suds/internal/product"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProductColumns = `
	id, name, category, price_per_liter, stock_liters, active, created_at, updated_at
`

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	if err := s.Scan(
		&p.ID, &p.Name, &p.Category, &p.PricePerLiter, &p.StockLiters, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, category, price_per_liter, stock_liters, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.Category,
		p.PricePerLiter,
		p.StockLiters,
		p.Active,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return product.ErrDuplicateName
		}

		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, price_per_liter = $3, stock_liters = $4, active = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Category,
		p.PricePerLiter,
		p.StockLiters,
		p.Active,
		p.ID,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return product.ErrDuplicateName
		}

		return fmt.Errorf("updating product: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return product.ErrInUse
		}

		return fmt.Errorf("deleting product: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) ListProducts(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Query != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)

		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}

	if filter.ActiveOnly {
		query += " AND active"
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
		argIdx++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)

		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

// UpsertProducts writes catalog import rows, matching existing products by
// name, inside a single transaction.
func (s *Store) UpsertProducts(ctx context.Context, params []product.UpsertParams) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning upsert tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (name, category, price_per_liter, stock_liters, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			price_per_liter = EXCLUDED.price_per_liter,
			stock_liters = EXCLUDED.stock_liters,
			active = EXCLUDED.active,
			updated_at = NOW()
	`

	count := 0

	for _, p := range params {
		if _, err := tx.ExecContext(ctx, query,
			p.Name,
			p.Category,
			p.PricePerLiter,
			p.StockLiters,
			p.Active,
		); err != nil {
			return 0, fmt.Errorf("upserting product %q: %w", p.Name, err)
		}

		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing upsert: %w", err)
	}

	return count, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
