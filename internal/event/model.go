package event

import (
	"time"

	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/category"
	"github.com/eventra/eventra-backend/internal/order"
	"github.com/eventra/eventra-backend/internal/ticket"
)

// Event status values
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// Date filter modes accepted by the listing endpoint
const (
	DateFilterToday     = "today"
	DateFilterThisWeek  = "this_week"
	DateFilterThisMonth = "this_month"
)

// PageSize is the fixed listing page size
const PageSize = 9

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Title        string            `gorm:"type:varchar(200);not null" json:"title"`
	Slug         string            `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	CategoryID   uint              `gorm:"not null;index" json:"category_id"`
	Category     category.Category `gorm:"constraint:OnDelete:CASCADE" json:"category"`
	OrganizerID  uint              `gorm:"not null;index" json:"organizer_id"`
	Organizer    auth.User         `gorm:"constraint:OnDelete:CASCADE" json:"organizer"`
	Description  string            `gorm:"type:text;not null" json:"description"`
	Location     string            `gorm:"type:varchar(255);not null" json:"location"`
	Venue        string            `gorm:"type:varchar(255);not null" json:"venue"`
	StartDate    time.Time         `gorm:"not null;index" json:"start_date"`
	EndDate      time.Time         `gorm:"not null" json:"end_date"`
	Status       string            `gorm:"type:varchar(10);default:'draft';index" json:"status"`
	ImageURL     string            `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	MaxAttendees int               `gorm:"not null;default:100" json:"max_attendees"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	Tickets []ticket.Ticket `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`

	// Purchase history is destroyed with the event
	OrderItems []order.OrderItem `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`

	// Derived, recomputed on read, never stored
	TicketsSold      int  `gorm:"-" json:"tickets_sold"`
	TicketsAvailable int  `gorm:"-" json:"tickets_available"`
	IsPast           bool `gorm:"-" json:"is_past"`
}

// ComputeDerived fills the derived fields from the sold count. Availability is
// a plain subtraction and may go negative on oversold events.
func (e *Event) ComputeDerived(sold int, now time.Time) {
	e.TicketsSold = sold
	e.TicketsAvailable = e.MaxAttendees - sold
	e.IsPast = now.After(e.EndDate)
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title        string    `json:"title" binding:"required,max=200"`
	Slug         string    `json:"slug" binding:"omitempty,max=200"`
	CategoryID   uint      `json:"category_id" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Location     string    `json:"location" binding:"required,max=255"`
	Venue        string    `json:"venue" binding:"required,max=255"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	Status       string    `json:"status" binding:"omitempty,oneof=draft published cancelled"`
	ImageURL     string    `json:"image_url" binding:"omitempty,max=500"`
	MaxAttendees int       `json:"max_attendees" binding:"required,gt=0"`
}

// ============================
// 🟠 Update Event Request
type UpdateEventRequest struct {
	Title        string    `json:"title" binding:"required,max=200"`
	CategoryID   uint      `json:"category_id" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Location     string    `json:"location" binding:"required,max=255"`
	Venue        string    `json:"venue" binding:"required,max=255"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	Status       string    `json:"status" binding:"omitempty,oneof=draft published cancelled"`
	ImageURL     string    `json:"image_url" binding:"omitempty,max=500"`
	MaxAttendees int       `json:"max_attendees" binding:"required,gt=0"`
}

// ============================
// 🔎 Listing Filter
type ListFilter struct {
	CategorySlug string
	Query        string
	DateFilter   string
	Page         int
}

// PaginatedEvents is the listing envelope
type PaginatedEvents struct {
	Data       []Event            `json:"data"`
	Category   *category.Category `json:"category,omitempty"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// HomeResponse carries the landing page payload
type HomeResponse struct {
	FeaturedEvents []Event             `json:"featured_events"`
	UpcomingEvents []Event             `json:"upcoming_events"`
	Categories     []category.Category `json:"categories"`
}
