package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common categories. Category is free text; these are the ones the shop
// actually stocks.
const (
	CategorySoap         = "soap"
	CategoryDisinfectant = "disinfectant"
	CategorySoftener     = "softener"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already exists")

	// ErrInUse is returned when deleting a product that sale lines still
	// reference.
	ErrInUse = errors.New("product is referenced by sales")
)

// Product is a liquid good sold by the liter.
type Product struct {
	ID            uuid.UUID
	Name          string
	Category      string
	PricePerLiter decimal.Decimal
	StockLiters   decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
