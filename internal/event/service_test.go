package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/auditlog"
	"github.com/eventra/eventra-backend/internal/category"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(e *Event) error {
	args := m.Called(e)
	if args.Error(0) == nil {
		e.ID = 11
	}
	return args.Error(0)
}

func (m *mockRepo) Update(e *Event) error {
	return m.Called(e).Error(0)
}

func (m *mockRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockRepo) FindBySlug(slug string) (*Event, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepo) FindPublishedBySlug(slug string) (*Event, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepo) CountSold(eventID uint) (int, error) {
	args := m.Called(eventID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) CountPublished(filter ListFilter, now time.Time) (int64, error) {
	args := m.Called(filter, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ListPublishedPage(filter ListFilter, now time.Time, limit, offset int) ([]Event, error) {
	args := m.Called(filter, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *mockRepo) Featured(limit int) ([]Event, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *mockRepo) Upcoming(now time.Time, limit int) ([]Event, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *mockRepo) ListByOrganizer(organizerID uint) ([]Event, error) {
	args := m.Called(organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(c *category.Category) error {
	return m.Called(c).Error(0)
}

func (m *mockCategoryRepo) List() ([]category.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(slug string) (*category.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

type auditStub struct{}

func (a *auditStub) LogAction(ctx context.Context, userID *uint, eventID *uint, action string, details map[string]interface{}, ip string, status string) {
}

func (a *auditStub) GetMyLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return &auditlog.PaginatedAuditLogs{}, nil
}

func newTestService(repo *mockRepo, catRepo *mockCategoryRepo) *Service {
	return &Service{
		Repo:         repo,
		CategoryRepo: catRepo,
		AuditSvc:     &auditStub{},
		now:          time.Now,
	}
}

func validCreateRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Title:        "Summer Fest 2025",
		CategoryID:   2,
		Description:  "An open air festival",
		Location:     "Lisbon",
		Venue:        "Parque da Cidade",
		StartDate:    time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC),
		Status:       StatusPublished,
		MaxAttendees: 100,
	}
}

func TestCreateEventDerivesSlug(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	repo.On("Create", mock.AnythingOfType("*event.Event")).Return(nil)

	e, err := svc.CreateEvent(context.Background(), validCreateRequest(), 9, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "summer-fest-2025", e.Slug)
	assert.Equal(t, StatusPublished, e.Status)
	assert.Equal(t, uint(9), e.OrganizerID)
}

func TestCreateEventDefaultsToDraft(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	repo.On("Create", mock.AnythingOfType("*event.Event")).Return(nil)

	req := validCreateRequest()
	req.Status = ""

	e, err := svc.CreateEvent(context.Background(), req, 9, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, e.Status)
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	svc := newTestService(new(mockRepo), new(mockCategoryRepo))

	req := validCreateRequest()
	req.EndDate = req.StartDate

	_, err := svc.CreateEvent(context.Background(), req, 9, "10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestUpdateEventRejectsNonOrganizer(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	existing := &Event{ID: 11, Slug: "summer-fest-2025", OrganizerID: 9}
	repo.On("FindBySlug", "summer-fest-2025").Return(existing, nil)

	req := &UpdateEventRequest{
		Title:        "Hijacked",
		CategoryID:   2,
		Description:  "x",
		Location:     "x",
		Venue:        "x",
		StartDate:    time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC),
		MaxAttendees: 100,
	}

	e, err := svc.UpdateEvent(context.Background(), "summer-fest-2025", req, 13, "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotOrganizer)
	// the event comes back so the handler can point at its detail page
	require.NotNil(t, e)
	assert.Equal(t, "summer-fest-2025", e.Slug)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteEventRejectsNonOrganizer(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	existing := &Event{ID: 11, Slug: "summer-fest-2025", OrganizerID: 9}
	repo.On("FindBySlug", "summer-fest-2025").Return(existing, nil)

	_, err := svc.DeleteEvent(context.Background(), "summer-fest-2025", 13, "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotOrganizer)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGetPublishedBySlugComputesAvailability(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	e := &Event{ID: 11, Slug: "summer-fest-2025", MaxAttendees: 100, EndDate: time.Now().Add(24 * time.Hour)}
	repo.On("FindPublishedBySlug", "summer-fest-2025").Return(e, nil)
	repo.On("CountSold", uint(11)).Return(30, nil)

	got, err := svc.GetPublishedBySlug("summer-fest-2025")
	require.NoError(t, err)
	assert.Equal(t, 30, got.TicketsSold)
	assert.Equal(t, 70, got.TicketsAvailable)
	assert.False(t, got.IsPast)
}

func TestGetPublishedBySlugNotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	repo.On("FindPublishedBySlug", "draft-only").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetPublishedBySlug("draft-only")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListClampsPastTheEndPage(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	filter := ListFilter{Page: 50}

	// 20 events across a 9-per-page listing means 3 pages
	repo.On("CountPublished", filter, mock.Anything).Return(int64(20), nil)
	repo.On("ListPublishedPage", filter, mock.Anything, PageSize, 2*PageSize).
		Return([]Event{{ID: 1, MaxAttendees: 10}}, nil)
	repo.On("CountSold", uint(1)).Return(0, nil)

	result, err := svc.List(filter)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(20), result.Total)
	assert.Equal(t, PageSize, result.PageSize)
}

func TestListEmptyResultStillReportsOnePage(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	filter := ListFilter{Query: "nothing matches"}

	repo.On("CountPublished", filter, mock.Anything).Return(int64(0), nil)
	repo.On("ListPublishedPage", filter, mock.Anything, PageSize, 0).
		Return([]Event{}, nil)

	result, err := svc.List(filter)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Empty(t, result.Data)
}

func TestListToleratesCountSoldFailure(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	filter := ListFilter{}

	repo.On("CountPublished", filter, mock.Anything).Return(int64(2), nil)
	repo.On("ListPublishedPage", filter, mock.Anything, PageSize, 0).Return([]Event{
		{ID: 1, MaxAttendees: 10},
		{ID: 2, MaxAttendees: 20},
	}, nil)
	repo.On("CountSold", uint(1)).Return(0, assert.AnError)
	repo.On("CountSold", uint(2)).Return(4, nil)

	result, err := svc.List(filter)
	require.NoError(t, err)
	require.Len(t, result.Data, 2)

	// the failed event serves zeroed derived fields, the rest stay accurate
	assert.Equal(t, 0, result.Data[0].TicketsSold)
	assert.Equal(t, 0, result.Data[0].TicketsAvailable)
	assert.Equal(t, 4, result.Data[1].TicketsSold)
	assert.Equal(t, 16, result.Data[1].TicketsAvailable)
}

func TestListUnknownCategory(t *testing.T) {
	repo := new(mockRepo)
	catRepo := new(mockCategoryRepo)
	svc := newTestService(repo, catRepo)

	catRepo.On("FindBySlug", "no-such-category").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.List(ListFilter{CategorySlug: "no-such-category"})
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestMyEventsIncludesDrafts(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockCategoryRepo))

	repo.On("ListByOrganizer", uint(9)).Return([]Event{
		{ID: 1, Status: StatusDraft, MaxAttendees: 10},
		{ID: 2, Status: StatusPublished, MaxAttendees: 20},
	}, nil)
	repo.On("CountSold", uint(1)).Return(0, nil)
	repo.On("CountSold", uint(2)).Return(5, nil)

	events, err := svc.MyEvents(9)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, StatusDraft, events[0].Status)
	assert.Equal(t, 15, events[1].TicketsAvailable)
}
