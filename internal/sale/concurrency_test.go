package sale_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsandoval/suds/internal/product"
	"github.com/dsandoval/suds/internal/sale"
)

// memRepo reproduces the store's transactional behavior in memory: one
// confirmation holds the locks at a time, and writes only land on Commit.
type memRepo struct {
	mu       sync.Mutex
	sales    map[uuid.UUID]*sale.Sale
	products map[uuid.UUID]*product.Product
}

func newMemRepo() *memRepo {
	return &memRepo{
		sales:    make(map[uuid.UUID]*sale.Sale),
		products: make(map[uuid.UUID]*product.Product),
	}
}

func (r *memRepo) addProduct(p *product.Product) { r.products[p.ID] = p }

func (r *memRepo) addSale(sl *sale.Sale) { r.sales[sl.ID] = sl }

func (r *memRepo) CreateSale(_ context.Context, sl *sale.Sale) error {
	sl.ID = uuid.New()
	r.sales[sl.ID] = sl

	return nil
}

func (r *memRepo) GetSale(_ context.Context, id uuid.UUID) (*sale.Sale, error) {
	sl, ok := r.sales[id]
	if !ok {
		return nil, sale.ErrNotFound
	}

	return sl, nil
}

func (r *memRepo) ListSales(_ context.Context, _ sale.ListFilter) ([]*sale.Sale, error) {
	return nil, nil
}

func (r *memRepo) DeleteDraftSale(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *memRepo) BeginConfirm(_ context.Context, saleID uuid.UUID) (sale.ConfirmTx, error) {
	r.mu.Lock()

	return &memTx{
		repo:   r,
		saleID: saleID,
		stock:  make(map[uuid.UUID]decimal.Decimal),
		lines:  make(map[uuid.UUID][2]decimal.Decimal),
	}, nil
}

type memTx struct {
	repo   *memRepo
	saleID uuid.UUID
	done   bool

	// staged writes, applied on Commit
	stock     map[uuid.UUID]decimal.Decimal
	lines     map[uuid.UUID][2]decimal.Decimal
	total     decimal.Decimal
	confirmed bool
}

func (t *memTx) SaleForUpdate(_ context.Context) (*sale.Sale, error) {
	sl, ok := t.repo.sales[t.saleID]
	if !ok {
		return nil, sale.ErrNotFound
	}

	// Shallow copy with copied lines so staged edits never leak on rollback.
	cp := *sl
	cp.Lines = make([]*sale.Line, len(sl.Lines))

	for i, line := range sl.Lines {
		lc := *line
		cp.Lines[i] = &lc
	}

	return &cp, nil
}

func (t *memTx) ProductsForUpdate(_ context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	var out []*product.Product

	for _, id := range ids {
		p, ok := t.repo.products[id]
		if !ok {
			continue
		}

		pc := *p
		out = append(out, &pc)
	}

	return out, nil
}

func (t *memTx) UpdateProductStock(_ context.Context, id uuid.UUID, stock decimal.Decimal) error {
	t.stock[id] = stock
	return nil
}

func (t *memTx) UpdateLinePricing(_ context.Context, id uuid.UUID, unitPrice, subtotal decimal.Decimal) error {
	t.lines[id] = [2]decimal.Decimal{unitPrice, subtotal}
	return nil
}

func (t *memTx) MarkConfirmed(_ context.Context, _ uuid.UUID, total decimal.Decimal) error {
	t.total = total
	t.confirmed = true

	return nil
}

func (t *memTx) Commit() error {
	if t.done {
		return errors.New("tx already finished")
	}

	for id, stock := range t.stock {
		t.repo.products[id].StockLiters = stock
	}

	sl := t.repo.sales[t.saleID]
	for _, line := range sl.Lines {
		if pricing, ok := t.lines[line.ID]; ok {
			line.UnitPrice = pricing[0]
			line.Subtotal = pricing[1]
		}
	}

	if t.confirmed {
		sl.Total = t.total
		sl.Status = sale.StatusConfirmed
		now := time.Now()
		sl.ConfirmedAt = &now
	}

	t.done = true
	t.repo.mu.Unlock()

	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}

	t.done = true
	t.repo.mu.Unlock()

	return nil
}

func memSale(clientID uuid.UUID, lines ...*sale.Line) *sale.Sale {
	sl := &sale.Sale{
		ID:       uuid.New(),
		ClientID: clientID,
		Status:   sale.StatusDraft,
		Lines:    lines,
	}
	for _, line := range lines {
		line.ID = uuid.New()
		line.SaleID = sl.ID
	}

	return sl
}

// Two sales race for the same stock of 10, each requesting 6. Exactly one may
// win; the loser must see the post-commit stock and fail, never drive it
// negative.
func TestService_Confirm_ConcurrentSalesNeverOversell(t *testing.T) {
	repo := newMemRepo()

	soap := blueSoap()
	soap.StockLiters = dec("10.00")
	repo.addProduct(soap)

	clientID := uuid.New()
	saleA := memSale(clientID, &sale.Line{ProductID: soap.ID, Liters: dec("6.00"), UnitPrice: dec("10.00")})
	saleB := memSale(clientID, &sale.Line{ProductID: soap.ID, Liters: dec("6.00"), UnitPrice: dec("10.00")})
	repo.addSale(saleA)
	repo.addSale(saleB)

	svc := sale.NewService(repo, &capturePublisher{})

	errs := make([]error, 2)

	var wg sync.WaitGroup

	for i, id := range []uuid.UUID{saleA.ID, saleB.ID} {
		i, id := i, id

		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = svc.Confirm(context.Background(), id)
		}()
	}

	wg.Wait()

	var succeeded, failed int

	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}

		var stockErr *sale.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		failed++
	}

	assert.Equal(t, 1, succeeded, "exactly one confirmation must win")
	assert.Equal(t, 1, failed)
	assert.Equal(t, "4.00", repo.products[soap.ID].StockLiters.StringFixed(2))
}

// A failed confirmation leaves every product and the sale exactly as found,
// even when other products in the sale had stock to spare.
func TestService_Confirm_FailureLeavesStateUntouched(t *testing.T) {
	repo := newMemRepo()

	soap := blueSoap()
	soap.StockLiters = dec("50.00")
	repo.addProduct(soap)

	softener := blueSoap()
	softener.ID = uuid.New()
	softener.Name = "Lavender Softener"
	softener.StockLiters = dec("2.00")
	repo.addProduct(softener)

	sl := memSale(uuid.New(),
		&sale.Line{ProductID: soap.ID, Liters: dec("5.00"), UnitPrice: dec("10.00")},
		&sale.Line{ProductID: softener.ID, Liters: dec("3.00"), UnitPrice: dec("8.00")},
	)
	repo.addSale(sl)

	svc := sale.NewService(repo, &capturePublisher{})

	_, err := svc.Confirm(context.Background(), sl.ID)

	var stockErr *sale.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, softener.ID, stockErr.ProductID)

	assert.Equal(t, "50.00", repo.products[soap.ID].StockLiters.StringFixed(2))
	assert.Equal(t, "2.00", repo.products[softener.ID].StockLiters.StringFixed(2))
	assert.Equal(t, sale.StatusDraft, repo.sales[sl.ID].Status)
	assert.True(t, repo.sales[sl.ID].Total.IsZero())

	// Retrying after a stock top-up succeeds with live values.
	repo.products[softener.ID].StockLiters = dec("10.00")

	total, err := svc.Confirm(context.Background(), sl.ID)
	require.NoError(t, err)
	assert.Equal(t, "74.00", total.StringFixed(2))
	assert.Equal(t, "45.00", repo.products[soap.ID].StockLiters.StringFixed(2))
	assert.Equal(t, "7.00", repo.products[softener.ID].StockLiters.StringFixed(2))
}
