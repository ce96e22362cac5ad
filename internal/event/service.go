package event

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/auditlog"
	"github.com/eventra/eventra-backend/internal/category"
	"github.com/eventra/eventra-backend/utils"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrNotOrganizer = errors.New("you do not have permission to modify this event")
	ErrInvalidDates = errors.New("end date must be after start date")
)

// Service wraps business logic for events and the home/listing views
type Service struct {
	Repo         Repository
	CategoryRepo category.Repository
	AuditSvc     auditlog.Service

	now func() time.Time
}

func NewService(r Repository, categoryRepo category.Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:         r,
		CategoryRepo: categoryRepo,
		AuditSvc:     auditSvc,
		now:          time.Now,
	}
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req *CreateEventRequest, organizerID uint, ip string) (*Event, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDates
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	e := &Event{
		Title:        req.Title,
		Slug:         slug,
		CategoryID:   req.CategoryID,
		OrganizerID:  organizerID,
		Description:  req.Description,
		Location:     req.Location,
		Venue:        req.Venue,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       status,
		ImageURL:     req.ImageURL,
		MaxAttendees: req.MaxAttendees,
	}

	if err := s.Repo.Create(e); err != nil {
		s.AuditSvc.LogAction(ctx, &organizerID, nil, "EVENT_CREATED", map[string]interface{}{
			"title": req.Title,
			"slug":  slug,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &organizerID, &e.ID, "EVENT_CREATED", map[string]interface{}{
		"event_id": e.ID,
		"title":    e.Title,
		"slug":     e.Slug,
		"status":   e.Status,
	}, ip, "success")

	return e, nil
}

// ===========================
// 🛠 Update Event (organizer-gated)
func (s *Service) UpdateEvent(ctx context.Context, slug string, req *UpdateEventRequest, actorID uint, ip string) (*Event, error) {
	e, err := s.Repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if e.OrganizerID != actorID {
		s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_UPDATED", map[string]interface{}{
			"event_id": e.ID,
			"error":    "not the organizer",
		}, ip, "failure")
		return e, ErrNotOrganizer
	}

	if !req.EndDate.After(req.StartDate) {
		return e, ErrInvalidDates
	}

	e.Title = req.Title
	e.CategoryID = req.CategoryID
	e.Description = req.Description
	e.Location = req.Location
	e.Venue = req.Venue
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.ImageURL = req.ImageURL
	e.MaxAttendees = req.MaxAttendees
	if req.Status != "" {
		e.Status = req.Status
	}

	if err := s.Repo.Update(e); err != nil {
		s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_UPDATED", map[string]interface{}{
			"event_id": e.ID,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_UPDATED", map[string]interface{}{
		"event_id": e.ID,
		"title":    e.Title,
		"status":   e.Status,
	}, ip, "success")

	return e, nil
}

// ===========================
// ❌ Delete Event (organizer-gated, cascades to ticket tiers)
func (s *Service) DeleteEvent(ctx context.Context, slug string, actorID uint, ip string) (*Event, error) {
	e, err := s.Repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if e.OrganizerID != actorID {
		s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_DELETED", map[string]interface{}{
			"event_id": e.ID,
			"error":    "not the organizer",
		}, ip, "failure")
		return e, ErrNotOrganizer
	}

	if err := s.Repo.Delete(e.ID); err != nil {
		s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_DELETED", map[string]interface{}{
			"event_id": e.ID,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &actorID, &e.ID, "EVENT_DELETED", map[string]interface{}{
		"event_id": e.ID,
		"title":    e.Title,
	}, ip, "success")

	return e, nil
}

// ===========================
// 🔍 Public Detail - published events only, with tiers and availability
func (s *Service) GetPublishedBySlug(slug string) (*Event, error) {
	e, err := s.Repo.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sold, err := s.Repo.CountSold(e.ID)
	if err != nil {
		return nil, err
	}
	e.ComputeDerived(sold, s.now())

	return e, nil
}

// ===========================
// 📄 Listing - published only, conjunctive filters, fixed page size,
// out-of-range pages clamped to the first/last page
func (s *Service) List(filter ListFilter) (*PaginatedEvents, error) {
	now := s.now()

	var cat *category.Category
	if filter.CategorySlug != "" {
		found, err := s.CategoryRepo.FindBySlug(filter.CategorySlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, category.ErrNotFound
			}
			return nil, err
		}
		cat = found
	}

	total, err := s.Repo.CountPublished(filter, now)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	page := ClampPage(filter.Page, totalPages)

	events, err := s.Repo.ListPublishedPage(filter, now, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	s.fillDerived(events, now)

	return &PaginatedEvents{
		Data:       events,
		Category:   cat,
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// ===========================
// 🏠 Home - featured + upcoming + categories
func (s *Service) Home() (*HomeResponse, error) {
	featured, err := s.Repo.Featured(6)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.Repo.Upcoming(s.now(), 6)
	if err != nil {
		return nil, err
	}

	categories, err := s.CategoryRepo.List()
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.fillDerived(featured, now)
	s.fillDerived(upcoming, now)

	return &HomeResponse{
		FeaturedEvents: featured,
		UpcomingEvents: upcoming,
		Categories:     categories,
	}, nil
}

// ===========================
// 📄 My Events - everything the user organizes, any status
func (s *Service) MyEvents(organizerID uint) ([]Event, error) {
	events, err := s.Repo.ListByOrganizer(organizerID)
	if err != nil {
		return nil, err
	}
	s.fillDerived(events, s.now())
	return events, nil
}

func (s *Service) fillDerived(events []Event, now time.Time) {
	for i := range events {
		sold, err := s.Repo.CountSold(events[i].ID)
		if err != nil {
			log.Printf("⚠️ Failed to count sold tickets for event %d: %v", events[i].ID, err)
			continue
		}
		events[i].ComputeDerived(sold, now)
	}
}
