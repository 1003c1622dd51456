package sale

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDelta records the stock movement one confirmation caused for one
// product.
type ProductDelta struct {
	ProductID   uuid.UUID
	ProductName string
	Deducted    decimal.Decimal
	Remaining   decimal.Decimal
}

// ConfirmedEvent is published after a confirmation commits.
type ConfirmedEvent struct {
	SaleID uuid.UUID
	Total  decimal.Decimal
	Deltas []ProductDelta
}

// Publisher receives domain events after they are durable. Implementations
// must not assume they run inside the confirmation transaction.
type Publisher interface {
	SaleConfirmed(ctx context.Context, ev ConfirmedEvent)
}

// LogPublisher writes events to the audit log.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	if log == nil {
		log = slog.Default()
	}

	return &LogPublisher{log: log}
}

func (p *LogPublisher) SaleConfirmed(ctx context.Context, ev ConfirmedEvent) {
	attrs := []any{
		"sale_id", ev.SaleID,
		"total", ev.Total.StringFixed(2),
	}

	for _, d := range ev.Deltas {
		attrs = append(attrs, "stock."+d.ProductName, d.Remaining.StringFixed(2))
	}

	p.log.InfoContext(ctx, "sale confirmed", attrs...)
}
