// Package receipt renders a printable PDF for a sale.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dsandoval/suds/internal/sale"
)

type Generator struct {
	shopName string
}

func NewGenerator(shopName string) *Generator {
	if shopName == "" {
		shopName = "Liquid Goods"
	}

	return &Generator{shopName: shopName}
}

// Render produces the receipt PDF for a sale with its lines loaded.
func (g *Generator) Render(sl *sale.Sale) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, g.shopName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Sale %s", sl.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", sl.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Client: %s", sl.ClientName))
	pdf.Ln(10)

	colWidths := []float64{80, 30, 35, 35}
	headers := []string{"Product", "Liters", "Unit price", "Subtotal"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)

	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}

	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)

	for _, line := range sl.Lines {
		pdf.CellFormat(colWidths[0], 7, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, line.Liters.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, line.Subtotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, sl.Total.StringFixed(2), "1", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}

	return buf.Bytes(), nil
}
