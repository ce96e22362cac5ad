package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/category"
	"github.com/eventra/eventra-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🏠 Home - GET /home
func (h *Handler) Home(c *gin.Context) {
	home, err := h.Service.Home()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load home page"})
		return
	}

	c.JSON(http.StatusOK, home)
}

// ===========================
// 📄 List Events - GET /events?q=&date=&page= and GET /events/category/:slug
func (h *Handler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := ListFilter{
		CategorySlug: c.Param("slug"),
		Query:        c.Query("q"),
		DateFilter:   c.Query("date"),
		Page:         page,
	}

	result, err := h.Service.List(filter)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===========================
// 🔍 Event Detail - GET /events/:slug
func (h *Handler) GetEventBySlug(c *gin.Context) {
	e, err := h.Service.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// 🎯 Create Event - POST /events
func (h *Handler) CreateEvent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	e, err := h.Service.CreateEvent(c.Request.Context(), &req, user.ID, ip)
	if err != nil {
		if errors.Is(err, ErrInvalidDates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully!",
		"event":   e,
	})
}

// ===========================
// 🛠 Update Event - PUT /events/:slug
func (h *Handler) UpdateEvent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	e, err := h.Service.UpdateEvent(c.Request.Context(), c.Param("slug"), &req, user.ID, ip)
	if err != nil {
		h.respondMutationError(c, e, err, "edit")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully!",
		"event":   e,
	})
}

// ===========================
// ❌ Delete Event - DELETE /events/:slug
func (h *Handler) DeleteEvent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ip := middleware.GetIPFromContext(c)

	e, err := h.Service.DeleteEvent(c.Request.Context(), c.Param("slug"), user.ID, ip)
	if err != nil {
		h.respondMutationError(c, e, err, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully!"})
}

// respondMutationError maps service errors for the organizer-gated paths.
// Permission violations are a soft-fail: the response points the caller back
// to the event page instead of surfacing a hard error.
func (h *Handler) respondMutationError(c *gin.Context, e *Event, err error, verb string) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, ErrNotOrganizer):
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "You do not have permission to " + verb + " this event.",
			"redirect": "/events/" + e.Slug + "/",
		})
	case errors.Is(err, ErrInvalidDates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + verb + " event: " + err.Error()})
	}
}

// ===========================
// 📄 My Events - GET /my-events
func (h *Handler) MyEvents(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	events, err := h.Service.MyEvents(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
