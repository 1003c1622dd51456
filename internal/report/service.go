package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/sale"
)

// Service builds sales reports over a date range.
type Service struct {
	sales *sale.Service
}

func NewService(sales *sale.Service) *Service {
	return &Service{sales: sales}
}

// Row is one sale in the report.
type Row struct {
	SaleID uuid.UUID
	Date   time.Time
	Client string
	Status sale.Status
	Total  decimal.Decimal
}

// Report lists sales in the range, newest first, with the summed total of the
// confirmed ones.
type Report struct {
	From       *time.Time
	To         *time.Time
	Rows       []Row
	GrandTotal decimal.Decimal
}

func (s *Service) SalesBetween(ctx context.Context, from, to *time.Time) (*Report, error) {
	sales, err := s.sales.List(ctx, sale.ListFilter{StartDate: from, EndDate: to})
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	rep := &Report{
		From:       from,
		To:         to,
		GrandTotal: decimal.Zero,
	}

	for _, sl := range sales {
		rep.Rows = append(rep.Rows, Row{
			SaleID: sl.ID,
			Date:   sl.CreatedAt,
			Client: sl.ClientName,
			Status: sl.Status,
			Total:  sl.Total,
		})

		if sl.Status == sale.StatusConfirmed {
			rep.GrandTotal = rep.GrandTotal.Add(sl.Total)
		}
	}

	return rep, nil
}

// WriteCSV renders the report rows as CSV.
func (s *Service) WriteCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Date", "Client", "Status", "Total"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rep.Rows {
		record := []string{
			row.SaleID.String(),
			row.Date.Format("2006-01-02 15:04"),
			row.Client,
			string(row.Status),
			row.Total.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
