package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type AppointmentRepository struct {
	DB *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

var appointmentSortColumns = map[string]bool{
	"date": true, "time": true, "client_name": true, "created_at": true, "status": true,
}

const appointmentSelect = `
	SELECT id, client_id, client_name, client_phone, vehicle_plate, vehicle_model,
	       services, date, time, status, notes, created_at, updated_at
	FROM appointments
`

func (r *AppointmentRepository) List(ctx context.Context, sort string) ([]*models.Appointment, error) {
	query := appointmentSelect + orderClause(sort, appointmentSortColumns, "date ASC, time ASC")
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// ListByDate returns every appointment on the given date, regardless of
// status. The slot conflict check needs the full set for the day.
func (r *AppointmentRepository) ListByDate(ctx context.Context, date string) ([]*models.Appointment, error) {
	rows, err := r.DB.Query(ctx, appointmentSelect+" WHERE date = $1 ORDER BY time ASC", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	a := &models.Appointment{}
	err := r.DB.QueryRow(ctx, appointmentSelect+" WHERE id = $1", id).Scan(
		&a.ID, &a.ClientID, &a.ClientName, &a.ClientPhone, &a.VehiclePlate, &a.VehicleModel,
		&a.Services, &a.Date, &a.Time, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	a.ID = uuid.NewString()
	if a.Services == nil {
		a.Services = []models.ServiceItem{}
	}
	query := `
		INSERT INTO appointments (id, client_id, client_name, client_phone, vehicle_plate,
		                          vehicle_model, services, date, time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		a.ID, a.ClientID, a.ClientName, a.ClientPhone, a.VehiclePlate,
		a.VehicleModel, a.Services, a.Date, a.Time, a.Status, a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *models.Appointment) error {
	if a.Services == nil {
		a.Services = []models.ServiceItem{}
	}
	query := `
		UPDATE appointments
		SET client_id = $2, client_name = $3, client_phone = $4, vehicle_plate = $5,
		    vehicle_model = $6, services = $7, date = $8, time = $9, status = $10,
		    notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		a.ID, a.ClientID, a.ClientName, a.ClientPhone, a.VehiclePlate,
		a.VehicleModel, a.Services, a.Date, a.Time, a.Status, a.Notes,
	).Scan(&a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
	return err
}

// CountByDate returns the number of non-cancelled appointments on a date.
func (r *AppointmentRepository) CountByDate(ctx context.Context, date string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM appointments WHERE date = $1 AND status != 'cancelled'", date,
	).Scan(&count)
	return count, err
}

func scanAppointments(rows pgx.Rows) ([]*models.Appointment, error) {
	var list []*models.Appointment
	for rows.Next() {
		a := &models.Appointment{}
		err := rows.Scan(
			&a.ID, &a.ClientID, &a.ClientName, &a.ClientPhone, &a.VehiclePlate, &a.VehicleModel,
			&a.Services, &a.Date, &a.Time, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
