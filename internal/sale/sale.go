package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a sale. Stock is deducted exactly
// once, when a draft is confirmed.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
)

var (
	ErrNotFound = errors.New("sale not found")

	// ErrAlreadyConfirmed is returned when confirming or deleting a sale that
	// has already been confirmed.
	ErrAlreadyConfirmed = errors.New("sale already confirmed")
)

// Sale is an order of liquid goods for one client.
type Sale struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ClientName  string // loaded via JOIN
	Status      Status
	Total       decimal.Decimal
	Lines       []*Line
	CreatedAt   time.Time
	ConfirmedAt *time.Time
}

// Line is one product-quantity-price entry within a sale. A zero UnitPrice
// means "take the product's current price at confirmation time".
type Line struct {
	ID          uuid.UUID
	SaleID      uuid.UUID
	ProductID   uuid.UUID
	ProductName string // loaded via JOIN
	Liters      decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ValidationError reports a sale line that fails a local precondition.
// The whole confirmation is rejected; nothing is mutated.
type ValidationError struct {
	Line   int // 1-based position within the sale
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// InsufficientStockError reports aggregated demand for a product exceeding
// its stock. The whole confirmation is rejected; nothing is mutated.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %s, requested %s",
		e.ProductName, e.Available, e.Requested)
}
