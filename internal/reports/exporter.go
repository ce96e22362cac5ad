package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// SalesExporter renders a sales report in the requested format
type SalesExporter interface {
	Export(format string, rows []SalesReportRow) ([]byte, string, string, error)
}

type salesExporter struct{}

func NewSalesExporter() SalesExporter {
	return &salesExporter{}
}

// Export returns the report bytes, a filename and a content type
func (e *salesExporter) Export(format string, rows []SalesReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("sales_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("sales_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("sales_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported report format: %s", format)
	}
}

//// ============================
/// SALES REPORT EXPORTS
//// ============================

func (e *salesExporter) exportCSV(rows []SalesReportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	headers := []string{"event_id", "title", "slug", "start_date", "status", "max_attendees", "tickets_sold", "revenue"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.Title,
			r.Slug,
			r.StartDate.Format("2006-01-02 15:04:05"),
			r.Status,
			strconv.Itoa(r.MaxAttendees),
			strconv.Itoa(r.TicketsSold),
			r.Revenue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *salesExporter) exportExcel(rows []SalesReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sales Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Event ID", "Title", "Slug", "Start Date", "Status", "Max Attendees", "Tickets Sold", "Revenue"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range rows {
		values := []interface{}{
			r.EventID,
			r.Title,
			r.Slug,
			r.StartDate.Format("2006-01-02 15:04:05"),
			r.Status,
			r.MaxAttendees,
			r.TicketsSold,
			r.Revenue.StringFixed(2),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *salesExporter) exportPDF(rows []SalesReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Event Sales Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Title", "Start Date", "Status", "Capacity", "Sold", "Revenue"}
	widths := []float64{15, 90, 45, 30, 30, 25, 35}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(r.EventID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.StartDate.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, strconv.Itoa(r.MaxAttendees), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, strconv.Itoa(r.TicketsSold), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.Revenue.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
