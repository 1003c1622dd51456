package sale

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/product"
)

// Confirm commits a draft sale: validates every line, locks the referenced
// products, checks aggregated demand against stock, deducts stock, fixes the
// line prices and the sale total, and flips the sale to confirmed. All of it
// happens in one transaction; any failure leaves stock and total untouched.
//
// Amounts are rounded half-up to 2 decimal places. Each line subtotal is
// rounded before summation, so the total is the sum of the rounded subtotals.
func (s *Service) Confirm(ctx context.Context, saleID uuid.UUID) (decimal.Decimal, error) {
	itx, err := s.repo.BeginConfirm(ctx, saleID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("begin confirm: %w", err)
	}
	defer itx.Rollback()

	sl, err := itx.SaleForUpdate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if sl.Status == StatusConfirmed {
		return decimal.Zero, ErrAlreadyConfirmed
	}

	if len(sl.Lines) == 0 {
		return decimal.Zero, &ValidationError{Line: 0, Reason: "a sale needs at least one line"}
	}

	for i, line := range sl.Lines {
		if !line.Liters.IsPositive() {
			return decimal.Zero, &ValidationError{Line: i + 1, Reason: "liters must be positive"}
		}
	}

	// Lock every distinct product in ascending id order. Two confirmations
	// overlapping on a product set always acquire locks in the same order,
	// so they cannot deadlock, and the stock read below is never stale.
	products, err := itx.ProductsForUpdate(ctx, distinctProductIDs(sl.Lines))
	if err != nil {
		return decimal.Zero, fmt.Errorf("locking products: %w", err)
	}

	byID := make(map[uuid.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	demand := make(map[uuid.UUID]decimal.Decimal, len(products))
	total := decimal.Zero

	for i, line := range sl.Lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return decimal.Zero, fmt.Errorf("sale references unknown product %s", line.ProductID)
		}

		if line.UnitPrice.IsZero() {
			line.UnitPrice = p.PricePerLiter
		}

		if !line.UnitPrice.IsPositive() {
			return decimal.Zero, &ValidationError{Line: i + 1, Reason: "unit price must be positive"}
		}

		line.Subtotal = line.Liters.Mul(line.UnitPrice).Round(2)
		total = total.Add(line.Subtotal)
		demand[line.ProductID] = demand[line.ProductID].Add(line.Liters)
	}

	total = total.Round(2)

	// All-or-nothing: every product must cover its aggregated demand before
	// any stock is written.
	for _, p := range products {
		if requested := demand[p.ID]; requested.GreaterThan(p.StockLiters) {
			return decimal.Zero, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   p.StockLiters,
				Requested:   requested,
			}
		}
	}

	deltas := make([]ProductDelta, 0, len(products))

	for _, p := range products {
		remaining := p.StockLiters.Sub(demand[p.ID]).Round(2)
		if err := itx.UpdateProductStock(ctx, p.ID, remaining); err != nil {
			return decimal.Zero, fmt.Errorf("updating stock for %s: %w", p.Name, err)
		}

		deltas = append(deltas, ProductDelta{
			ProductID:   p.ID,
			ProductName: p.Name,
			Deducted:    demand[p.ID],
			Remaining:   remaining,
		})
	}

	for _, line := range sl.Lines {
		if err := itx.UpdateLinePricing(ctx, line.ID, line.UnitPrice, line.Subtotal); err != nil {
			return decimal.Zero, fmt.Errorf("updating line pricing: %w", err)
		}
	}

	if err := itx.MarkConfirmed(ctx, sl.ID, total); err != nil {
		return decimal.Zero, fmt.Errorf("marking confirmed: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("commit confirm: %w", err)
	}

	s.pub.SaleConfirmed(ctx, ConfirmedEvent{
		SaleID: sl.ID,
		Total:  total,
		Deltas: deltas,
	})

	return total, nil
}

// distinctProductIDs returns the unique product ids of the lines, sorted
// ascending. The order is the lock order.
func distinctProductIDs(lines []*Line) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))

	var ids []uuid.UUID

	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}

		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	return ids
}
