package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/product"
	"github.com/dsandoval/suds/internal/sale"
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

const selectSaleColumns = `
	s.id, s.client_id, c.first_name || ' ' || c.last_name, s.status, s.total,
	s.created_at, s.confirmed_at
`

func scanSale(s scanner) (*sale.Sale, error) {
	var sl sale.Sale

	var statusStr string

	if err := s.Scan(
		&sl.ID, &sl.ClientID, &sl.ClientName, &statusStr, &sl.Total,
		&sl.CreatedAt, &sl.ConfirmedAt,
	); err != nil {
		return nil, err
	}

	sl.Status = sale.Status(statusStr)

	return &sl, nil
}

func (s *Store) CreateSale(ctx context.Context, sl *sale.Sale) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning create tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO sales (client_id, status, total, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		sl.ClientID,
		sl.Status,
		sl.Total,
	).Scan(&sl.ID, &sl.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}

	lineQuery := `
		INSERT INTO sale_lines (sale_id, product_id, liters, unit_price, subtotal, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i, line := range sl.Lines {
		line.SaleID = sl.ID

		err := tx.QueryRowContext(ctx, lineQuery,
			sl.ID,
			line.ProductID,
			line.Liters,
			line.UnitPrice,
			line.Subtotal,
			i,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("creating sale line %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sale: %w", err)
	}

	return nil
}

func (s *Store) GetSale(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		JOIN clients c ON s.client_id = c.id
		WHERE s.id = $1`

	sl, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	lines, err := loadLines(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	sl.Lines = lines

	return sl, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func loadLines(ctx context.Context, q querier, saleID uuid.UUID) ([]*sale.Line, error) {
	query := `
		SELECT l.id, l.sale_id, l.product_id, p.name, l.liters, l.unit_price, l.subtotal
		FROM sale_lines l
		JOIN products p ON l.product_id = p.id
		WHERE l.sale_id = $1
		ORDER BY l.position ASC
	`

	rows, err := q.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("loading sale lines: %w", err)
	}
	defer rows.Close()

	var lines []*sale.Line

	for rows.Next() {
		var line sale.Line
		if err := rows.Scan(
			&line.ID, &line.SaleID, &line.ProductID, &line.ProductName,
			&line.Liters, &line.UnitPrice, &line.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scanning sale line: %w", err)
		}

		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale line rows: %w", err)
	}

	return lines, nil
}

func (s *Store) ListSales(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		JOIN clients c ON s.client_id = c.id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND s.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND s.created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND s.created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY s.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		sl, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, nil
}

// DeleteDraftSale removes a draft sale; its lines go with it via cascade.
// Confirmed sales are immutable.
func (s *Store) DeleteDraftSale(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sales WHERE id = $1 AND status = $2`

	res, err := s.db.ExecContext(ctx, query, id, sale.StatusDraft)
	if err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil || n > 0 {
		return nil
	}

	var status string
	if err := s.db.QueryRowContext(ctx, `SELECT status FROM sales WHERE id = $1`, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sale.ErrNotFound
		}

		return fmt.Errorf("checking sale status: %w", err)
	}

	return sale.ErrAlreadyConfirmed
}

type confirmTx struct {
	tx     *sql.Tx
	saleID uuid.UUID
}

// BeginConfirm opens the confirmation transaction. All reads issued through
// the returned handle see stock as of the row locks it takes.
func (s *Store) BeginConfirm(ctx context.Context, saleID uuid.UUID) (sale.ConfirmTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning confirm tx: %w", err)
	}

	return &confirmTx{tx: tx, saleID: saleID}, nil
}

func (c *confirmTx) Commit() error   { return c.tx.Commit() }
func (c *confirmTx) Rollback() error { return c.tx.Rollback() }

// SaleForUpdate locks the sale row, serializing concurrent confirmations of
// the same sale so a second one observes the confirmed status.
func (c *confirmTx) SaleForUpdate(ctx context.Context) (*sale.Sale, error) {
	query := `
		SELECT id, client_id, status, total, created_at, confirmed_at
		FROM sales
		WHERE id = $1
		FOR UPDATE
	`

	var sl sale.Sale

	var statusStr string

	err := c.tx.QueryRowContext(ctx, query, c.saleID).Scan(
		&sl.ID, &sl.ClientID, &statusStr, &sl.Total, &sl.CreatedAt, &sl.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("locking sale: %w", err)
	}

	sl.Status = sale.Status(statusStr)

	lines, err := loadLines(ctx, c.tx, c.saleID)
	if err != nil {
		return nil, err
	}

	sl.Lines = lines

	return &sl, nil
}

// ProductsForUpdate locks the product rows in ascending id order. The ORDER BY
// inside the locking query keeps the acquisition order deterministic across
// concurrent confirmations regardless of line order.
func (c *confirmTx) ProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	query := `
		SELECT id, name, category, price_per_liter, stock_liters, active, created_at, updated_at
		FROM products
		WHERE id = ANY($1::uuid[])
		ORDER BY id ASC
		FOR UPDATE
	`

	rows, err := c.tx.QueryContext(ctx, query, idStrs)
	if err != nil {
		return nil, fmt.Errorf("locking products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.PricePerLiter, &p.StockLiters, &p.Active,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (c *confirmTx) UpdateProductStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error {
	query := `UPDATE products SET stock_liters = $1, updated_at = NOW() WHERE id = $2`

	if _, err := c.tx.ExecContext(ctx, query, stock, id); err != nil {
		return fmt.Errorf("updating product stock: %w", err)
	}

	return nil
}

func (c *confirmTx) UpdateLinePricing(ctx context.Context, id uuid.UUID, unitPrice, subtotal decimal.Decimal) error {
	query := `UPDATE sale_lines SET unit_price = $1, subtotal = $2 WHERE id = $3`

	if _, err := c.tx.ExecContext(ctx, query, unitPrice, subtotal, id); err != nil {
		return fmt.Errorf("updating line pricing: %w", err)
	}

	return nil
}

func (c *confirmTx) MarkConfirmed(ctx context.Context, saleID uuid.UUID, total decimal.Decimal) error {
	query := `
		UPDATE sales
		SET status = $1, total = $2, confirmed_at = NOW()
		WHERE id = $3
	`

	if _, err := c.tx.ExecContext(ctx, query, sale.StatusConfirmed, total, saleID); err != nil {
		return fmt.Errorf("marking sale confirmed: %w", err)
	}

	return nil
}
