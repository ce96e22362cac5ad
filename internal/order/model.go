package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. The purchase flow writes completed orders directly;
// pending and cancelled are reserved for future payment integration.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ============================
// 🔷 GORM Order Model
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Reference   string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Status      string          `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// ============================
// 🔷 GORM Order Item Model. Price is snapshotted from the tier at
// purchase time so later tier edits never rewrite order history.
type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"not null;index" json:"order_id"`
	EventID  uint            `gorm:"not null;index" json:"event_id"`
	TicketID uint            `gorm:"not null;index" json:"ticket_id"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	TotalPrice decimal.Decimal `gorm:"-" json:"total_price"`
}

// ComputeTotal fills the derived line total
func (i *OrderItem) ComputeTotal() {
	i.TotalPrice = i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ============================
// 🟡 Purchase Request
type PurchaseRequest struct {
	TicketID uint `json:"ticket_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// EventInfo is the slice of the events table the purchase flow reads
type EventInfo struct {
	ID           uint      `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Venue        string    `json:"venue"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	MaxAttendees int       `json:"max_attendees"`
}

// IsPast reports whether the event has already ended
func (e *EventInfo) IsPast(now time.Time) bool {
	return e.EndDate.Before(now)
}

// TicketInfo is the slice of the tickets table the purchase flow reads
type TicketInfo struct {
	ID         uint            `json:"id"`
	EventID    uint            `json:"event_id"`
	TicketType string          `json:"ticket_type"`
	Price      decimal.Decimal `json:"price"`
}

// PurchasedItem is a joined row used for confirmations and ticket listings
type PurchasedItem struct {
	OrderID        uint            `json:"order_id"`
	OrderReference string          `json:"order_reference"`
	OrderStatus    string          `json:"order_status"`
	PurchasedAt    time.Time       `json:"purchased_at"`
	EventID        uint            `json:"event_id"`
	EventTitle     string          `json:"event_title"`
	EventSlug      string          `json:"event_slug"`
	Location       string          `json:"location"`
	Venue          string          `json:"venue"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	TicketType     string          `json:"ticket_type"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// ============================
// 🟢 Confirmation Response
type ConfirmationResponse struct {
	Order Order           `json:"order"`
	Items []PurchasedItem `json:"items"`
}

// OrderCreatedMessage is the payload published after a successful purchase
type OrderCreatedMessage struct {
	OrderID    uint      `json:"order_id"`
	Reference  string    `json:"reference"`
	UserID     uint      `json:"user_id"`
	EventID    uint      `json:"event_id"`
	EventSlug  string    `json:"event_slug"`
	TicketID   uint      `json:"ticket_id"`
	TicketType string    `json:"ticket_type"`
	Quantity   int       `json:"quantity"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}
