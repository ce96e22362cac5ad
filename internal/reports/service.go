package reports

import (
	"context"
	"fmt"

	"github.com/eventra/eventra-backend/internal/auditlog"
)

type Service interface {
	SalesReport(ctx context.Context, organizerID uint, format, ip string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter SalesExporter
	auditSvc auditlog.Service
}

func NewService(repo Repository, exporter SalesExporter, auditSvc auditlog.Service) Service {
	return &service{repo: repo, exporter: exporter, auditSvc: auditSvc}
}

// ===========================
// 📄 Sales Report - per-event sold seats and revenue for the organizer
func (s *service) SalesReport(ctx context.Context, organizerID uint, format, ip string) ([]byte, string, string, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		return nil, "", "", fmt.Errorf("unsupported report format: %s", format)
	}

	rows, err := s.repo.SalesByOrganizer(organizerID)
	if err != nil {
		return nil, "", "", err
	}

	data, filename, contentType, err := s.exporter.Export(format, rows)
	if err != nil {
		return nil, "", "", err
	}

	s.auditSvc.LogAction(ctx, &organizerID, nil, "SALES_REPORT_EXPORTED", map[string]interface{}{
		"format": format,
		"events": len(rows),
	}, ip, "success")

	return data, filename, contentType, nil
}
