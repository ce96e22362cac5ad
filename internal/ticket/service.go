package ticket

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/auditlog"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrNotOrganizer   = errors.New("you do not have permission to manage tickets for this event")
)

type Service interface {
	CreateTier(ctx context.Context, eventSlug string, req *TicketRequest, actorID uint, ip string) (*Ticket, error)
	UpdateTier(ctx context.Context, ticketID uint, req *TicketRequest, actorID uint, ip string) (*Ticket, error)
	DeleteTier(ctx context.Context, ticketID uint, actorID uint, ip string) error
	ListByEvent(eventID uint) ([]Ticket, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

// ===========================
// 🎯 Create Tier - organizer only
func (s *service) CreateTier(ctx context.Context, eventSlug string, req *TicketRequest, actorID uint, ip string) (*Ticket, error) {
	ref, err := s.repo.FindEventBySlug(eventSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if ref.OrganizerID != actorID {
		return nil, ErrNotOrganizer
	}

	t := &Ticket{
		EventID:    ref.ID,
		TicketType: req.TicketType,
		Price:      req.Price,
		Quantity:   req.Quantity,
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, &actorID, &ref.ID, "TICKET_TIER_CREATED", map[string]interface{}{
		"ticket_id":   t.ID,
		"event_id":    ref.ID,
		"ticket_type": t.TicketType,
		"price":       t.Price.String(),
	}, ip, "success")

	return t, nil
}

// ===========================
// 🛠 Update Tier - organizer only. Price changes never touch past orders:
// order items hold their own price snapshot.
func (s *service) UpdateTier(ctx context.Context, ticketID uint, req *TicketRequest, actorID uint, ip string) (*Ticket, error) {
	t, ref, err := s.ownedTier(ticketID, actorID)
	if err != nil {
		return nil, err
	}

	t.TicketType = req.TicketType
	t.Price = req.Price
	t.Quantity = req.Quantity

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, &actorID, &ref.ID, "TICKET_TIER_UPDATED", map[string]interface{}{
		"ticket_id":   t.ID,
		"ticket_type": t.TicketType,
		"price":       t.Price.String(),
	}, ip, "success")

	return t, nil
}

// ===========================
// ❌ Delete Tier - organizer only
func (s *service) DeleteTier(ctx context.Context, ticketID uint, actorID uint, ip string) error {
	t, ref, err := s.ownedTier(ticketID, actorID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(t.ID); err != nil {
		return err
	}

	s.auditSvc.LogAction(ctx, &actorID, &ref.ID, "TICKET_TIER_DELETED", map[string]interface{}{
		"ticket_id":   t.ID,
		"ticket_type": t.TicketType,
	}, ip, "success")

	return nil
}

func (s *service) ListByEvent(eventID uint) ([]Ticket, error) {
	return s.repo.ListByEvent(eventID)
}

// ownedTier resolves a tier and enforces that the actor organizes its event
func (s *service) ownedTier(ticketID, actorID uint) (*Ticket, *EventRef, error) {
	t, err := s.repo.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTicketNotFound
		}
		return nil, nil, err
	}

	ref, err := s.repo.FindEventByID(t.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, err
	}

	if ref.OrganizerID != actorID {
		return nil, nil, ErrNotOrganizer
	}

	return t, ref, nil
}
