package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []SalesReportRow {
	return []SalesReportRow{
		{
			EventID:      1,
			Title:        "Summer Fest",
			Slug:         "summer-fest",
			StartDate:    time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
			Status:       "published",
			MaxAttendees: 100,
			TicketsSold:  40,
			Revenue:      decimal.RequireFromString("800.00"),
		},
		{
			EventID:      2,
			Title:        "Jazz Night",
			Slug:         "jazz-night",
			StartDate:    time.Date(2025, 6, 20, 20, 0, 0, 0, time.UTC),
			Status:       "published",
			MaxAttendees: 50,
			TicketsSold:  0,
			Revenue:      decimal.Zero,
		},
	}
}

func TestExportCSV(t *testing.T) {
	exporter := NewSalesExporter()

	data, filename, contentType, err := exporter.Export(FormatCSV, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "sales_report_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "title", records[0][1])
	assert.Equal(t, "Summer Fest", records[1][1])
	assert.Equal(t, "800.00", records[1][7])
	assert.Equal(t, "0.00", records[2][7])
}

func TestExportExcel(t *testing.T) {
	exporter := NewSalesExporter()

	data, filename, contentType, err := exporter.Export(FormatExcel, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestExportPDF(t *testing.T) {
	exporter := NewSalesExporter()

	data, filename, contentType, err := exporter.Export(FormatPDF, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportUnknownFormat(t *testing.T) {
	exporter := NewSalesExporter()

	_, _, _, err := exporter.Export("xml", sampleRows())
	assert.Error(t, err)
}

func TestExportEmptyReport(t *testing.T) {
	exporter := NewSalesExporter()

	data, _, _, err := exporter.Export(FormatCSV, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
