package reports

import (
	"gorm.io/gorm"
)

type Repository interface {
	SalesByOrganizer(organizerID uint) ([]SalesReportRow, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// SalesByOrganizer rolls up seats and revenue per event across completed
// orders. Events with no sales still appear with zero rows.
func (r *repository) SalesByOrganizer(organizerID uint) ([]SalesReportRow, error) {
	var rows []SalesReportRow
	err := r.db.Table("events").
		Select(`events.id AS event_id, events.title, events.slug,
events.start_date, events.status, events.max_attendees,
COALESCE(SUM(CASE WHEN orders.status = 'completed' THEN order_items.quantity ELSE 0 END), 0) AS tickets_sold,
COALESCE(SUM(CASE WHEN orders.status = 'completed' THEN order_items.quantity * order_items.price ELSE 0 END), 0) AS revenue`).
		Joins("LEFT JOIN order_items ON order_items.event_id = events.id").
		Joins("LEFT JOIN orders ON orders.id = order_items.order_id").
		Where("events.organizer_id = ?", organizerID).
		Group("events.id").
		Order("events.start_date DESC").
		Scan(&rows).Error
	return rows, err
}
