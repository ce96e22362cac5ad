package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// SalesReportRow aggregates completed-order sales for one event
type SalesReportRow struct {
	EventID      uint            `json:"event_id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	StartDate    time.Time       `json:"start_date"`
	Status       string          `json:"status"`
	MaxAttendees int             `json:"max_attendees"`
	TicketsSold  int             `json:"tickets_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}
