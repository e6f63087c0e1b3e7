package booking

import (
	"fmt"
	"time"

	"carwash-backend/internal/models"
)

// Default business hours, used when the opening/closing settings are absent.
const (
	DefaultOpeningTime = "08:00"
	DefaultClosingTime = "18:00"
)

const slotLayout = "15:04"

// Grid returns the half-hour slot grid from opening to closing inclusive.
// The hours are configuration passed in by the caller (system settings), not
// a hardcoded constant. With the defaults this yields 21 slots,
// 08:00 ... 18:00.
func Grid(openingTime, closingTime string) ([]string, error) {
	if openingTime == "" {
		openingTime = DefaultOpeningTime
	}
	if closingTime == "" {
		closingTime = DefaultClosingTime
	}

	open, err := time.Parse(slotLayout, openingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", openingTime, err)
	}
	closing, err := time.Parse(slotLayout, closingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", closingTime, err)
	}
	if closing.Before(open) {
		return nil, fmt.Errorf("closing time %q before opening time %q", closingTime, openingTime)
	}

	var slots []string
	for t := open; !t.After(closing); t = t.Add(30 * time.Minute) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots, nil
}

// GridOrDefault is Grid with stored-settings tolerance: values that do not
// parse fall back to the default hours instead of failing the caller.
func GridOrDefault(openingTime, closingTime string) []string {
	grid, err := Grid(openingTime, closingTime)
	if err != nil {
		grid, _ = Grid("", "")
	}
	return grid
}

// Contains reports whether slot is one of the grid's times.
func Contains(grid []string, slot string) bool {
	for _, s := range grid {
		if s == slot {
			return true
		}
	}
	return false
}

// IsSlotTaken reports whether (date, slot) is occupied by an appointment
// other than excludeID. Cancelled appointments never block a slot. An empty
// date reports nothing taken. Pure over its inputs: safe to call on every
// render without throttling.
func IsSlotTaken(appointments []*models.Appointment, date, slot, excludeID string) bool {
	if date == "" {
		return false
	}
	for _, a := range appointments {
		if a.Date == date &&
			a.Time == slot &&
			a.ID != excludeID &&
			a.Status != models.AppointmentCancelled {
			return true
		}
	}
	return false
}

// Availability maps every grid slot for the given date to its taken flag, in
// grid order. Used by the appointment form to grey out occupied slots.
func Availability(appointments []*models.Appointment, grid []string, date, excludeID string) []models.SlotAvailability {
	out := make([]models.SlotAvailability, 0, len(grid))
	for _, slot := range grid {
		out = append(out, models.SlotAvailability{
			Time:  slot,
			Taken: IsSlotTaken(appointments, date, slot, excludeID),
		})
	}
	return out
}
