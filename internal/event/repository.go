package event

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(e *Event) error
	Update(e *Event) error
	Delete(id uint) error
	FindBySlug(slug string) (*Event, error)
	FindPublishedBySlug(slug string) (*Event, error)
	CountSold(eventID uint) (int, error)
	CountPublished(filter ListFilter, now time.Time) (int64, error)
	ListPublishedPage(filter ListFilter, now time.Time, limit, offset int) ([]Event, error)
	Featured(limit int) ([]Event, error)
	Upcoming(now time.Time, limit int) ([]Event, error)
	ListByOrganizer(organizerID uint) ([]Event, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// ===========================
// 🎯 Create Event
func (r *repository) Create(e *Event) error {
	return r.db.Create(e).Error
}

// ===========================
// 🛠 Update Event
func (r *repository) Update(e *Event) error {
	return r.db.Save(e).Error
}

// ===========================
// ❌ Delete Event (ticket tiers go with it via FK cascade)
func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Event{}, id).Error
}

// ===========================
// 🔍 Find By Slug (any status - used for organizer-gated operations)
func (r *repository) FindBySlug(slug string) (*Event, error) {
	var e Event
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 🔍 Find Published By Slug (public detail view, with tiers)
func (r *repository) FindPublishedBySlug(slug string) (*Event, error) {
	var e Event
	err := r.db.
		Preload("Category").
		Preload("Organizer").
		Preload("Tickets").
		Where("slug = ? AND status = ?", slug, StatusPublished).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 🔢 Count Sold Tickets - SUM of item quantities on completed orders
func (r *repository) CountSold(eventID uint) (int, error) {
	var sold int64
	err := r.db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.event_id = ? AND orders.status = ?", eventID, "completed").
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&sold).Error
	return int(sold), err
}

// publishedQuery applies the conjunctive listing filters over published events
func (r *repository) publishedQuery(filter ListFilter, now time.Time) *gorm.DB {
	query := r.db.Model(&Event{}).Where("events.status = ?", StatusPublished)

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = events.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.Query != "" {
		ilike := "%" + filter.Query + "%"
		query = query.Where(
			"events.title ILIKE ? OR events.description ILIKE ? OR events.location ILIKE ?",
			ilike, ilike, ilike,
		)
	}

	if start, end, ok := DateWindow(filter.DateFilter, now); ok {
		query = query.Where("events.start_date >= ? AND events.start_date < ?", start, end)
	}

	return query
}

// ===========================
// 🔢 Count Published (for page clamping)
func (r *repository) CountPublished(filter ListFilter, now time.Time) (int64, error) {
	var total int64
	err := r.publishedQuery(filter, now).Count(&total).Error
	return total, err
}

// ===========================
// 📄 List Published Page
func (r *repository) ListPublishedPage(filter ListFilter, now time.Time, limit, offset int) ([]Event, error) {
	var events []Event
	err := r.publishedQuery(filter, now).
		Preload("Category").
		Order("events.start_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	return events, err
}

// ===========================
// 🌟 Featured - latest published events
func (r *repository) Featured(limit int) ([]Event, error) {
	var events []Event
	err := r.db.
		Preload("Category").
		Where("status = ?", StatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// ===========================
// 📆 Upcoming - published events starting after now
func (r *repository) Upcoming(now time.Time, limit int) ([]Event, error) {
	var events []Event
	err := r.db.
		Preload("Category").
		Where("status = ? AND start_date > ?", StatusPublished, now).
		Order("start_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// ===========================
// 📄 List By Organizer (any status - personal dashboard)
func (r *repository) ListByOrganizer(organizerID uint) ([]Event, error) {
	var events []Event
	err := r.db.
		Preload("Category").
		Where("organizer_id = ?", organizerID).
		Order("start_date DESC").
		Find(&events).Error
	return events, err
}
