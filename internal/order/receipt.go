package order

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// buildReceiptPDF renders an order confirmation as a printable receipt
func buildReceiptPDF(conf *ConfirmationResponse, username string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 6, fmt.Sprintf("Reference: %s", conf.Order.Reference))
	pdf.Ln(6)
	pdf.Cell(40, 6, fmt.Sprintf("Purchased by: %s", username))
	pdf.Ln(6)
	pdf.Cell(40, 6, fmt.Sprintf("Date: %s", conf.Order.CreatedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(6)
	pdf.Cell(40, 6, fmt.Sprintf("Status: %s", conf.Order.Status))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Event", "Tier", "Qty", "Price", "Total"}
	widths := []float64{70, 30, 20, 30, 30}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range conf.Items {
		pdf.CellFormat(widths[0], 6, item.EventTitle, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, item.TicketType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprint(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, item.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, item.TotalPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 8, fmt.Sprintf("Order Total: %s", conf.Order.TotalAmount.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
