package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/auditlog"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventEnded     = errors.New("this event has already ended")
	ErrSoldOut        = errors.New("this event is sold out")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrOrderNotFound  = errors.New("order not found")
)

// InsufficientError carries the remaining capacity when a purchase asks
// for more seats than the event has left
type InsufficientError struct {
	Available int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("Only %d tickets available", e.Available)
}

// Publisher emits order lifecycle events to the message bus
type Publisher interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMessage) error
}

type Service interface {
	Purchase(ctx context.Context, eventSlug string, req *PurchaseRequest, userID uint, ip string) (*ConfirmationResponse, error)
	Confirmation(orderID, userID uint) (*ConfirmationResponse, error)
	Receipt(orderID, userID uint, username string) ([]byte, error)
	MyTickets(userID uint) ([]PurchasedItem, error)
}

type service struct {
	repo      Repository
	auditSvc  auditlog.Service
	publisher Publisher
	now       func() time.Time
}

func NewService(repo Repository, auditSvc auditlog.Service, publisher Publisher) Service {
	return &service{repo: repo, auditSvc: auditSvc, publisher: publisher, now: time.Now}
}

// ===========================
// 🎯 Purchase - reserve seats on a published event.
//
// The order row is written before the tier and quantity checks run. A
// failed check therefore leaves a completed order with no items and a
// zero total; capacity accounting sums item quantities, so these empty
// orders never consume seats.
func (s *service) Purchase(ctx context.Context, eventSlug string, req *PurchaseRequest, userID uint, ip string) (*ConfirmationResponse, error) {
	event, err := s.repo.FindPublishedEventBySlug(eventSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if event.IsPast(s.now()) {
		s.logPurchaseFailure(ctx, userID, event.ID, eventSlug, "event ended", ip)
		return nil, ErrEventEnded
	}

	sold, err := s.repo.TicketsSold(event.ID)
	if err != nil {
		return nil, err
	}

	available := event.MaxAttendees - sold
	if available <= 0 {
		s.logPurchaseFailure(ctx, userID, event.ID, eventSlug, "sold out", ip)
		return nil, ErrSoldOut
	}

	o := &Order{
		Reference:   uuid.NewString(),
		UserID:      userID,
		Status:      StatusCompleted,
		TotalAmount: decimal.Zero,
	}
	if err := s.repo.CreateOrder(o); err != nil {
		return nil, err
	}

	tier, err := s.repo.FindTicketForEvent(req.TicketID, event.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logPurchaseFailure(ctx, userID, event.ID, eventSlug, "ticket not found", ip)
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if req.Quantity > available {
		s.logPurchaseFailure(ctx, userID, event.ID, eventSlug, "insufficient capacity", ip)
		return nil, &InsufficientError{Available: available}
	}

	item := &OrderItem{
		OrderID:  o.ID,
		EventID:  event.ID,
		TicketID: tier.ID,
		Quantity: req.Quantity,
		Price:    tier.Price,
	}
	if err := s.repo.CreateOrderItem(item); err != nil {
		return nil, err
	}
	item.ComputeTotal()

	total := item.TotalPrice
	if err := s.repo.UpdateOrderTotal(o.ID, total); err != nil {
		return nil, err
	}
	o.TotalAmount = total
	o.Items = []OrderItem{*item}

	s.auditSvc.LogAction(ctx, &userID, &event.ID, "ORDER_PLACED", map[string]interface{}{
		"order_id":    o.ID,
		"reference":   o.Reference,
		"event_slug":  eventSlug,
		"ticket_id":   tier.ID,
		"ticket_type": tier.TicketType,
		"quantity":    req.Quantity,
		"total":       total.String(),
	}, ip, "success")

	if s.publisher != nil {
		msg := OrderCreatedMessage{
			OrderID:    o.ID,
			Reference:  o.Reference,
			UserID:     userID,
			EventID:    event.ID,
			EventSlug:  eventSlug,
			TicketID:   tier.ID,
			TicketType: tier.TicketType,
			Quantity:   req.Quantity,
			Total:      total.String(),
			CreatedAt:  o.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(ctx, msg); err != nil {
			log.Printf("⚠️ Failed to publish order created message: %v", err)
		}
	}

	items, err := s.repo.ItemsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	fillItemTotals(items)

	return &ConfirmationResponse{Order: *o, Items: items}, nil
}

// ===========================
// 🔍 Confirmation - order summary, scoped to the buying user
func (s *service) Confirmation(orderID, userID uint) (*ConfirmationResponse, error) {
	o, err := s.repo.FindOrderForUser(orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := s.repo.ItemsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	fillItemTotals(items)

	return &ConfirmationResponse{Order: *o, Items: items}, nil
}

// ===========================
// 📄 Receipt - PDF rendering of a confirmed order
func (s *service) Receipt(orderID, userID uint, username string) ([]byte, error) {
	conf, err := s.Confirmation(orderID, userID)
	if err != nil {
		return nil, err
	}
	return buildReceiptPDF(conf, username)
}

// ===========================
// 🔍 My Tickets - every seat the user holds on completed orders
func (s *service) MyTickets(userID uint) ([]PurchasedItem, error) {
	items, err := s.repo.ItemsForUser(userID)
	if err != nil {
		return nil, err
	}
	fillItemTotals(items)
	return items, nil
}

func (s *service) logPurchaseFailure(ctx context.Context, userID, eventID uint, slug, reason string, ip string) {
	s.auditSvc.LogAction(ctx, &userID, &eventID, "ORDER_REJECTED", map[string]interface{}{
		"event_slug": slug,
		"reason":     reason,
	}, ip, "failure")
}

func fillItemTotals(items []PurchasedItem) {
	for i := range items {
		items[i].TotalPrice = items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
	}
}
