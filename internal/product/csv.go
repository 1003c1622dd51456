package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog CSV columns. Import matches the header case-insensitively;
// Category and Active are optional.
var csvHeader = []string{"Name", "Category", "PricePerLiter", "Stock", "Active"}

// ParseCSV reads a catalog CSV into upsert rows. The first row must be a
// header containing at least Name, PricePerLiter and Stock. Rows with an
// empty name are skipped; unparseable numbers fail the whole import.
func ParseCSV(r io.Reader) ([]UpsertParams, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, cell := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	for _, required := range []string{"name", "priceperliter", "stock"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}

	var params []UpsertParams

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		name := strings.TrimSpace(cellValue(row, cols, "name"))
		if name == "" {
			continue
		}

		price, err := parseDecimal(cellValue(row, cols, "priceperliter"))
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", rowNum, err)
		}

		stock, err := parseDecimal(cellValue(row, cols, "stock"))
		if err != nil {
			return nil, fmt.Errorf("row %d: stock: %w", rowNum, err)
		}

		category := strings.TrimSpace(cellValue(row, cols, "category"))
		if category == "" {
			category = CategorySoap
		}

		params = append(params, UpsertParams{
			Name:          name,
			Category:      category,
			PricePerLiter: price,
			StockLiters:   stock,
			Active:        parseActive(cellValue(row, cols, "active")),
		})
	}

	return params, nil
}

// WriteCSV writes products in the same format ParseCSV accepts.
func WriteCSV(w io.Writer, products []*Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range products {
		active := "0"
		if p.Active {
			active = "1"
		}

		record := []string{
			p.Name,
			p.Category,
			p.PricePerLiter.StringFixed(2),
			p.StockLiters.StringFixed(2),
			active,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func cellValue(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return row[idx]
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}

func parseActive(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "true", "yes":
		return true
	default:
		return false
	}
}
