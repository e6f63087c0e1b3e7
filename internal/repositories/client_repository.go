package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

var clientSortColumns = map[string]bool{
	"name": true, "created_at": true, "total_visits": true, "loyalty_points": true,
}

func (r *ClientRepository) List(ctx context.Context, sort string) ([]*models.Client, error) {
	query := `
		SELECT id, name, phone, email, vehicles, notes, loyalty_points, total_visits, created_at, updated_at
		FROM clients
	` + orderClause(sort, clientSortColumns, "name ASC")

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c := &models.Client{}
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email, &c.Vehicles, &c.Notes,
			&c.LoyaltyPoints, &c.TotalVisits, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	c := &models.Client{}
	query := `
		SELECT id, name, phone, email, vehicles, notes, loyalty_points, total_visits, created_at, updated_at
		FROM clients WHERE id = $1
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Vehicles, &c.Notes,
		&c.LoyaltyPoints, &c.TotalVisits, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	c.ID = uuid.NewString()
	if c.Vehicles == nil {
		c.Vehicles = []models.Vehicle{}
	}
	query := `
		INSERT INTO clients (id, name, phone, email, vehicles, notes, loyalty_points, total_visits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Vehicles, c.Notes, c.LoyaltyPoints, c.TotalVisits,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	if c.Vehicles == nil {
		c.Vehicles = []models.Vehicle{}
	}
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, vehicles = $5, notes = $6,
		    loyalty_points = $7, total_visits = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Vehicles, c.Notes, c.LoyaltyPoints, c.TotalVisits,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	return err
}
