package reservation

import "github.com/barberia-app/barberia-api/internal/models"

// WindowBlocks reports whether one unavailability window covers the
// requested time. A nil/empty start time blocks the whole day; otherwise
// the window is half-open [start, end), so a request at exactly the end
// time is not blocked. "HH:MM" strings compare correctly byte-wise.
func WindowBlocks(w models.BarberUnavailability, t string) bool {
	if w.StartTime == nil || *w.StartTime == "" {
		return true
	}
	if w.EndTime == nil || *w.EndTime == "" {
		return false
	}
	return t >= *w.StartTime && t < *w.EndTime
}

// AnyWindowBlocks checks a set of windows for the same barber/date.
func AnyWindowBlocks(windows []models.BarberUnavailability, t string) bool {
	for _, w := range windows {
		if WindowBlocks(w, t) {
			return true
		}
	}
	return false
}
