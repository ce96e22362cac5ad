package order

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	FindPublishedEventBySlug(slug string) (*EventInfo, error)
	TicketsSold(eventID uint) (int, error)
	FindTicketForEvent(ticketID, eventID uint) (*TicketInfo, error)
	CreateOrder(o *Order) error
	CreateOrderItem(item *OrderItem) error
	UpdateOrderTotal(orderID uint, total decimal.Decimal) error
	FindOrderForUser(orderID, userID uint) (*Order, error)
	ItemsForOrder(orderID uint) ([]PurchasedItem, error)
	ItemsForUser(userID uint) ([]PurchasedItem, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

const itemColumns = `order_items.order_id, orders.reference AS order_reference,
orders.status AS order_status, orders.created_at AS purchased_at,
order_items.event_id, events.title AS event_title, events.slug AS event_slug,
events.location, events.venue, events.start_date, events.end_date,
tickets.ticket_type, order_items.quantity, order_items.price`

func (r *repository) FindPublishedEventBySlug(slug string) (*EventInfo, error) {
	var info EventInfo
	err := r.db.Table("events").
		Select("id, slug, title, location, venue, start_date, end_date, status, max_attendees").
		Where("slug = ? AND status = ?", slug, "published").
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// TicketsSold counts seats consumed by completed orders across all tiers
func (r *repository) TicketsSold(eventID uint) (int, error) {
	var sold int64
	err := r.db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.event_id = ? AND orders.status = ?", eventID, StatusCompleted).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&sold).Error
	return int(sold), err
}

func (r *repository) FindTicketForEvent(ticketID, eventID uint) (*TicketInfo, error) {
	var info TicketInfo
	err := r.db.Table("tickets").
		Select("id, event_id, ticket_type, price").
		Where("id = ? AND event_id = ?", ticketID, eventID).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *repository) CreateOrder(o *Order) error {
	return r.db.Create(o).Error
}

func (r *repository) CreateOrderItem(item *OrderItem) error {
	return r.db.Create(item).Error
}

func (r *repository) UpdateOrderTotal(orderID uint, total decimal.Decimal) error {
	return r.db.Model(&Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (r *repository) FindOrderForUser(orderID, userID uint) (*Order, error) {
	var o Order
	err := r.db.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) ItemsForOrder(orderID uint) ([]PurchasedItem, error) {
	var items []PurchasedItem
	err := r.db.Table("order_items").
		Select(itemColumns).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN events ON events.id = order_items.event_id").
		Joins("JOIN tickets ON tickets.id = order_items.ticket_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&items).Error
	return items, err
}

// ItemsForUser lists the caller's purchased tickets, newest order first
func (r *repository) ItemsForUser(userID uint) ([]PurchasedItem, error) {
	var items []PurchasedItem
	err := r.db.Table("order_items").
		Select(itemColumns).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN events ON events.id = order_items.event_id").
		Joins("JOIN tickets ON tickets.id = order_items.ticket_id").
		Where("orders.user_id = ? AND orders.status = ?", userID, StatusCompleted).
		Order("orders.created_at DESC, order_items.id ASC").
		Scan(&items).Error
	return items, err
}
