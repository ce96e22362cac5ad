package event

import (
	"time"
)

// DateWindow translates a date filter mode into a half-open [start, end)
// window over event start dates. Windows follow the listing contract:
//   - today:      the current calendar date
//   - this_week:  a 7-day forward-looking window from today, inclusive of the
//     seventh day
//   - this_month: the current calendar year + month
//
// ok is false for unknown modes, which apply no window at all.
func DateWindow(mode string, now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch mode {
	case DateFilterToday:
		return today, today.AddDate(0, 0, 1), true
	case DateFilterThisWeek:
		return today, today.AddDate(0, 0, 8), true
	case DateFilterThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, monthStart.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// ClampPage folds an out-of-range page number back into [1, totalPages].
// Non-positive pages become the first page, past-the-end pages the last.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
