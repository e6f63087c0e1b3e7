package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type ServiceRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

var serviceSortColumns = map[string]bool{
	"name": true, "price": true, "created_at": true, "duration_minutes": true,
}

func (r *ServiceRepository) List(ctx context.Context, sort string) ([]*models.Service, error) {
	query := `
		SELECT id, name, description, price, duration_minutes, is_combo, active, created_at, updated_at
		FROM services
	` + orderClause(sort, serviceSortColumns, "name ASC")

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		s := &models.Service{}
		err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes,
			&s.IsCombo, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *ServiceRepository) Get(ctx context.Context, id string) (*models.Service, error) {
	s := &models.Service{}
	query := `
		SELECT id, name, description, price, duration_minutes, is_combo, active, created_at, updated_at
		FROM services WHERE id = $1
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes,
		&s.IsCombo, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	s.ID = uuid.NewString()
	query := `
		INSERT INTO services (id, name, description, price, duration_minutes, is_combo, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.IsCombo, s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *models.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration_minutes = $5,
		    is_combo = $6, active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.IsCombo, s.Active,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	return err
}
