package reservation

import (
	"fmt"
	"time"
)

// SlotGrid defines the bookable day: fixed-length slots from OpenHour
// inclusive to CloseHour exclusive.
type SlotGrid struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

// DefaultGrid is 09:00–19:00 in half-hour steps, 20 slots per day.
func DefaultGrid() SlotGrid {
	return SlotGrid{OpenHour: 9, CloseHour: 19, SlotMinutes: 30}
}

// Slots returns every slot of the day in chronological order, formatted
// as "HH:MM".
func (g SlotGrid) Slots() []string {
	out := make([]string, 0, (g.CloseHour-g.OpenHour)*60/g.SlotMinutes)
	for min := g.OpenHour * 60; min < g.CloseHour*60; min += g.SlotMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", min/60, min%60))
	}
	return out
}

// Contains reports whether t ("HH:MM") lands exactly on the grid.
func (g SlotGrid) Contains(t string) bool {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return false
	}
	min := parsed.Hour()*60 + parsed.Minute()
	if min < g.OpenHour*60 || min >= g.CloseHour*60 {
		return false
	}
	return min%g.SlotMinutes == 0
}

// Available returns the grid minus the occupied times, preserving
// chronological order.
func (g SlotGrid) Available(occupied []string) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	free := make([]string, 0)
	for _, slot := range g.Slots() {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free
}

// ValidDate checks the "YYYY-MM-DD" calendar-date format.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
