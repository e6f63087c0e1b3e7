package booking

import (
	"testing"

	"carwash-backend/internal/models"
)

func appt(id, date, slot, status string) *models.Appointment {
	return &models.Appointment{ID: id, Date: date, Time: slot, Status: status}
}

func TestGrid_Defaults(t *testing.T) {
	slots, err := Grid("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 21 {
		t.Fatalf("expected 21 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("expected first slot 08:00, got %s", slots[0])
	}
	if slots[1] != "08:30" {
		t.Errorf("expected second slot 08:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "18:00" {
		t.Errorf("expected last slot 18:00, got %s", slots[len(slots)-1])
	}
}

func TestGrid_ConfiguredHours(t *testing.T) {
	slots, err := Grid("09:00", "12:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestGrid_Invalid(t *testing.T) {
	if _, err := Grid("25:00", "18:00"); err == nil {
		t.Error("expected error for invalid opening time")
	}
	if _, err := Grid("18:00", "08:00"); err == nil {
		t.Error("expected error for closing before opening")
	}
}

func TestIsSlotTaken_Exclusivity(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "2026-03-10", "10:00", models.AppointmentScheduled),
		appt("a2", "2026-03-10", "10:00", models.AppointmentConfirmed),
	}

	// Checking availability for a new booking on either occupied slot.
	if !IsSlotTaken(appointments, "2026-03-10", "10:00", "") {
		t.Error("slot with two non-cancelled appointments must report taken")
	}
	// Each of the pair sees the other.
	if !IsSlotTaken(appointments, "2026-03-10", "10:00", "a1") {
		t.Error("a1 editing its own booking must still see a2's conflict")
	}
	if !IsSlotTaken(appointments, "2026-03-10", "10:00", "a2") {
		t.Error("a2 editing its own booking must still see a1's conflict")
	}
}

func TestIsSlotTaken_CancellationFreesSlot(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "2026-03-10", "10:00", models.AppointmentCancelled),
	}
	if IsSlotTaken(appointments, "2026-03-10", "10:00", "") {
		t.Error("a slot occupied only by a cancelled appointment must be available")
	}
}

func TestIsSlotTaken_SelfExclusionOnEdit(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "2026-03-10", "10:00", models.AppointmentScheduled),
		appt("a2", "2026-03-10", "10:30", models.AppointmentScheduled),
		appt("a3", "2026-03-10", "10:00", models.AppointmentCancelled),
	}
	// Editing a1 and keeping its own slot must report available regardless of
	// how many other cancelled appointments share it.
	if IsSlotTaken(appointments, "2026-03-10", "10:00", "a1") {
		t.Error("appointment editing its own slot must not conflict with itself")
	}
	// But moving a1 into a2's slot conflicts.
	if !IsSlotTaken(appointments, "2026-03-10", "10:30", "a1") {
		t.Error("moving into an occupied slot must report taken")
	}
}

func TestIsSlotTaken_EmptyDate(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "", "10:00", models.AppointmentScheduled),
	}
	if IsSlotTaken(appointments, "", "10:00", "") {
		t.Error("empty date must report no conflicts")
	}
}

func TestIsSlotTaken_DifferentDateOrTime(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "2026-03-10", "10:00", models.AppointmentScheduled),
	}
	if IsSlotTaken(appointments, "2026-03-11", "10:00", "") {
		t.Error("different date must not conflict")
	}
	if IsSlotTaken(appointments, "2026-03-10", "10:30", "") {
		t.Error("different slot must not conflict")
	}
}

func TestAvailability(t *testing.T) {
	appointments := []*models.Appointment{
		appt("a1", "2026-03-10", "08:30", models.AppointmentScheduled),
		appt("a2", "2026-03-10", "09:00", models.AppointmentCancelled),
	}
	grid, err := Grid("08:00", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	avail := Availability(appointments, grid, "2026-03-10", "")
	if len(avail) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(avail))
	}
	if avail[0].Taken {
		t.Error("08:00 should be free")
	}
	if !avail[1].Taken {
		t.Error("08:30 should be taken")
	}
	if avail[2].Taken {
		t.Error("09:00 occupied only by a cancelled appointment should be free")
	}
}

func TestGridOrDefault_FallsBackOnMalformedHours(t *testing.T) {
	slots := GridOrDefault("8am", "late")
	if len(slots) != 21 {
		t.Fatalf("expected default 21 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" || slots[len(slots)-1] != "18:00" {
		t.Errorf("expected default hours, got %s..%s", slots[0], slots[len(slots)-1])
	}

	slots = GridOrDefault("09:00", "10:00")
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots for valid hours, got %d", len(slots))
	}
}

func TestContains(t *testing.T) {
	grid, err := Grid("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Contains(grid, "10:30") {
		t.Error("expected 10:30 to be on the grid")
	}
	for _, slot := range []string{"10:17", "07:30", "18:30", ""} {
		if Contains(grid, slot) {
			t.Errorf("expected %q to be off the grid", slot)
		}
	}
}
