package ticket

import (
	"github.com/shopspring/decimal"

	"github.com/eventra/eventra-backend/internal/order"
)

// Ticket tier types
const (
	TypeRegular   = "regular"
	TypeVIP       = "vip"
	TypeEarlyBird = "early_bird"
)

// ============================
// 🔷 GORM Ticket Model - a priced tier of an event.
// Quantity is a declared inventory size kept for display; capacity gating
// runs off the event-level attendee cap, not this field.
type Ticket struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	EventID    uint            `gorm:"not null;index" json:"event_id"`
	TicketType string          `gorm:"type:varchar(20);default:'regular';not null" json:"ticket_type"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity   int             `gorm:"not null;default:0" json:"quantity"`

	// Items sold against this tier are destroyed with it
	OrderItems []order.OrderItem `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
}

// ============================
// 🟡 Create/Update Ticket Request
type TicketRequest struct {
	TicketType string          `json:"ticket_type" binding:"required,oneof=regular vip early_bird"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   int             `json:"quantity" binding:"omitempty,gte=0"`
}

// EventRef is the slice of the events table the tier operations need for
// their ownership guard
type EventRef struct {
	ID          uint
	Slug        string
	OrganizerID uint
}
