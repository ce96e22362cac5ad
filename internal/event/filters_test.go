package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateWindowToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	start, end, ok := DateWindow(DateFilterToday, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowThisWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	start, end, ok := DateWindow(DateFilterThisWeek, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	// inclusive seventh day ahead, so the window closes eight days out
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowThisMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	start, end, ok := DateWindow(DateFilterThisMonth, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowMonthRollsOverYear(t *testing.T) {
	now := time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)

	start, end, ok := DateWindow(DateFilterThisMonth, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowUnknownMode(t *testing.T) {
	_, _, ok := DateWindow("next_year", time.Now())
	assert.False(t, ok)

	_, _, ok = DateWindow("", time.Now())
	assert.False(t, ok)
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page       int
		totalPages int
		want       int
	}{
		{1, 5, 1},
		{5, 5, 5},
		{3, 5, 3},
		{0, 5, 1},
		{-2, 5, 1},
		{99, 5, 5},
		{1, 0, 1},
		{7, 1, 1},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ClampPage(c.page, c.totalPages), "page=%d totalPages=%d", c.page, c.totalPages)
	}
}

func TestComputeDerivedAllowsNegativeAvailability(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := Event{MaxAttendees: 10, EndDate: now.Add(24 * time.Hour)}

	e.ComputeDerived(12, now)
	assert.Equal(t, 12, e.TicketsSold)
	assert.Equal(t, -2, e.TicketsAvailable)
	assert.False(t, e.IsPast)

	e.EndDate = now.Add(-time.Hour)
	e.ComputeDerived(3, now)
	assert.True(t, e.IsPast)
}
