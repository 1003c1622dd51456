package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/sale"
)

type lineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Liters      decimal.Decimal `json:"liters"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type saleResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Status      sale.Status     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Lines       []lineResponse  `json:"lines,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
}

func toResponse(sl *sale.Sale) saleResponse {
	resp := saleResponse{
		ID:          sl.ID,
		ClientID:    sl.ClientID,
		ClientName:  sl.ClientName,
		Status:      sl.Status,
		Total:       sl.Total,
		CreatedAt:   sl.CreatedAt,
		ConfirmedAt: sl.ConfirmedAt,
	}

	for _, line := range sl.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Liters:      line.Liters,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	return resp
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, sl := range sales {
		resp[i] = toResponse(sl)
	}

	return resp
}
