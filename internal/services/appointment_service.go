package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"carwash-backend/internal/booking"
	"carwash-backend/internal/cache"
	"carwash-backend/internal/metrics"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
)

// ErrSlotTaken is returned when the requested date/time collides with an
// active appointment.
var ErrSlotTaken = errors.New("time slot already taken")

// ErrOutsideHours is returned when the requested time is not a slot of the
// configured booking grid.
var ErrOutsideHours = errors.New("time is outside business hours")

type AppointmentService struct {
	appointmentRepo *repositories.AppointmentRepository
	settingRepo     *repositories.SystemSettingRepository
}

func NewAppointmentService(
	appointmentRepo *repositories.AppointmentRepository,
	settingRepo *repositories.SystemSettingRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		settingRepo:     settingRepo,
	}
}

func (s *AppointmentService) List(ctx context.Context, sort string) ([]*models.Appointment, error) {
	return s.appointmentRepo.List(ctx, sort)
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointmentRepo.Get(ctx, id)
}

// grid returns the configured booking grid, falling back to the default
// hours when the stored settings are absent or malformed.
func (s *AppointmentService) grid(ctx context.Context) []string {
	opening := s.settingRepo.GetValue(ctx, models.SettingOpeningTime, "")
	closing := s.settingRepo.GetValue(ctx, models.SettingClosingTime, "")
	return booking.GridOrDefault(opening, closing)
}

// checkSlot enforces slot validity and exclusivity over the day's
// appointments. excludeID is the appointment being edited, so it never
// conflicts with itself.
func (s *AppointmentService) checkSlot(ctx context.Context, date, slot, excludeID string) error {
	if date == "" {
		return nil
	}
	if slot != "" && !booking.Contains(s.grid(ctx), slot) {
		return ErrOutsideHours
	}
	sameDay, err := s.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		return err
	}
	if booking.IsSlotTaken(sameDay, date, slot, excludeID) {
		metrics.SlotConflictsTotal.Inc()
		return ErrSlotTaken
	}
	return nil
}

func (s *AppointmentService) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := s.checkSlot(ctx, req.Date, req.Time, ""); err != nil {
		return nil, err
	}
	appt := &models.Appointment{
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		VehiclePlate: req.VehiclePlate,
		VehicleModel: req.VehicleModel,
		Services:     req.Services,
		Date:         req.Date,
		Time:         req.Time,
		Status:       models.AppointmentScheduled,
		Notes:        req.Notes,
	}
	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		if isSlotUniqueViolation(err) {
			metrics.SlotConflictsTotal.Inc()
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return appt, nil
}

func (s *AppointmentService) Update(ctx context.Context, appt *models.Appointment) error {
	if err := s.checkSlot(ctx, appt.Date, appt.Time, appt.ID); err != nil {
		return err
	}
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		if isSlotUniqueViolation(err) {
			metrics.SlotConflictsTotal.Inc()
			return ErrSlotTaken
		}
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// Availability returns the half-hour grid for a date with each slot marked
// taken or free. Business hours come from system settings, falling back to
// the 08:00-18:00 defaults.
func (s *AppointmentService) Availability(ctx context.Context, date, excludeID string) ([]models.SlotAvailability, error) {
	sameDay, err := s.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return booking.Availability(sameDay, s.grid(ctx), date, excludeID), nil
}

// isSlotUniqueViolation matches the partial unique index that backstops the
// slot check against concurrent bookings.
func isSlotUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == "idx_appointments_slot"
}
