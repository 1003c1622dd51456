package product

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter ListFilter) ([]*Product, error)

	// UpsertProducts inserts or updates products matched by name, all within
	// one transaction. Returns the number of rows written.
	UpsertProducts(ctx context.Context, params []UpsertParams) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name          string
	Category      string
	PricePerLiter decimal.Decimal
	StockLiters   decimal.Decimal
	Active        bool
}

// UpsertParams is one row of a catalog import, matched by name.
type UpsertParams struct {
	Name          string
	Category      string
	PricePerLiter decimal.Decimal
	StockLiters   decimal.Decimal
	Active        bool
}

type ListFilter struct {
	Query      string
	ActiveOnly bool
	Limit      int
	Offset     int
}

func validate(name string, price, stock decimal.Decimal) error {
	if name == "" {
		return errors.New("name is required")
	}

	if !price.IsPositive() {
		return errors.New("price per liter must be positive")
	}

	if stock.IsNegative() {
		return errors.New("stock cannot be negative")
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := validate(params.Name, params.PricePerLiter, params.StockLiters); err != nil {
		return nil, err
	}

	p := &Product{
		Name:          params.Name,
		Category:      params.Category,
		PricePerLiter: params.PricePerLiter,
		StockLiters:   params.StockLiters,
		Active:        params.Active,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := validate(p.Name, p.PricePerLiter, p.StockLiters); err != nil {
		return err
	}

	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

// Catalog returns the active products, ordered by name, for the public
// storefront listing.
func (s *Service) Catalog(ctx context.Context, limit int) ([]*Product, error) {
	return s.repo.ListProducts(ctx, ListFilter{ActiveOnly: true, Limit: limit})
}

// ImportCSV parses the catalog CSV and upserts every row in one transaction.
// The reader must already be UTF-8 (see internal/encoding).
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return 0, fmt.Errorf("parsing catalog csv: %w", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}

	n, err := s.repo.UpsertProducts(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("upserting products: %w", err)
	}

	return n, nil
}

// ExportCSV writes the full catalog, ordered by name, to w.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.repo.ListProducts(ctx, ListFilter{})
	if err != nil {
		return fmt.Errorf("listing products: %w", err)
	}

	return WriteCSV(w, products)
}
