package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/product"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	CreateSale(ctx context.Context, s *Sale) error
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	ListSales(ctx context.Context, filter ListFilter) ([]*Sale, error)
	DeleteDraftSale(ctx context.Context, id uuid.UUID) error

	BeginConfirm(ctx context.Context, saleID uuid.UUID) (ConfirmTx, error)
}

// ConfirmTx is the transaction handle for one confirmation. Every read
// happens under row locks held until Commit or Rollback; a failure at any
// point leaves committed state untouched.
type ConfirmTx interface {
	// SaleForUpdate returns the sale with its lines, sale row locked for the
	// duration of the transaction.
	SaleForUpdate(ctx context.Context) (*Sale, error)

	// ProductsForUpdate locks the given products in ascending id order and
	// returns their current state.
	ProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error)

	UpdateProductStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error
	UpdateLinePricing(ctx context.Context, id uuid.UUID, unitPrice, subtotal decimal.Decimal) error
	MarkConfirmed(ctx context.Context, saleID uuid.UUID, total decimal.Decimal) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	pub  Publisher
}

func NewService(repo Repository, pub Publisher) *Service {
	if pub == nil {
		pub = NewLogPublisher(nil)
	}

	return &Service{repo: repo, pub: pub}
}

type LineParams struct {
	ProductID uuid.UUID
	Liters    decimal.Decimal
	UnitPrice decimal.Decimal // zero = product price at confirmation
}

type CreateParams struct {
	ClientID uuid.UUID
	Lines    []LineParams
}

type ListFilter struct {
	ClientID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Create persists a draft sale with its lines. Stock is not touched until
// Confirm.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Sale, error) {
	if params.ClientID == uuid.Nil {
		return nil, &ValidationError{Line: 0, Reason: "client is required"}
	}

	if len(params.Lines) == 0 {
		return nil, &ValidationError{Line: 0, Reason: "a sale needs at least one line"}
	}

	for i, lp := range params.Lines {
		if !lp.Liters.IsPositive() {
			return nil, &ValidationError{Line: i + 1, Reason: "liters must be positive"}
		}

		if lp.UnitPrice.IsNegative() {
			return nil, &ValidationError{Line: i + 1, Reason: "unit price cannot be negative"}
		}
	}

	sl := &Sale{
		ClientID: params.ClientID,
		Status:   StatusDraft,
		Total:    decimal.Zero,
	}
	for _, lp := range params.Lines {
		sl.Lines = append(sl.Lines, &Line{
			ProductID: lp.ProductID,
			Liters:    lp.Liters,
			UnitPrice: lp.UnitPrice,
		})
	}

	if err := s.repo.CreateSale(ctx, sl); err != nil {
		return nil, err
	}

	return sl, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	return s.repo.ListSales(ctx, filter)
}

// Delete removes a draft sale and its lines. Confirmed sales are immutable.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDraftSale(ctx, id)
}
