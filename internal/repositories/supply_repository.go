package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type SupplyRepository struct {
	DB *pgxpool.Pool
}

func NewSupplyRepository(db *pgxpool.Pool) *SupplyRepository {
	return &SupplyRepository{DB: db}
}

var supplySortColumns = map[string]bool{
	"name": true, "current_stock": true, "category": true, "created_at": true,
}

func (r *SupplyRepository) List(ctx context.Context, sort string) ([]*models.Supply, error) {
	query := `
		SELECT id, name, unit, current_stock, minimum_stock, cost_per_unit, category, active, created_at, updated_at
		FROM supplies
	` + orderClause(sort, supplySortColumns, "name ASC")

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplies []*models.Supply
	for rows.Next() {
		s := &models.Supply{}
		err := rows.Scan(
			&s.ID, &s.Name, &s.Unit, &s.CurrentStock, &s.MinimumStock,
			&s.CostPerUnit, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}

	return supplies, rows.Err()
}

func (r *SupplyRepository) Get(ctx context.Context, id string) (*models.Supply, error) {
	s := &models.Supply{}
	query := `
		SELECT id, name, unit, current_stock, minimum_stock, cost_per_unit, category, active, created_at, updated_at
		FROM supplies WHERE id = $1
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Unit, &s.CurrentStock, &s.MinimumStock,
		&s.CostPerUnit, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SupplyRepository) Create(ctx context.Context, s *models.Supply) error {
	s.ID = uuid.NewString()
	query := `
		INSERT INTO supplies (id, name, unit, current_stock, minimum_stock, cost_per_unit, category, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		s.ID, s.Name, s.Unit, s.CurrentStock, s.MinimumStock, s.CostPerUnit, s.Category, s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create supply: %w", err)
	}
	return nil
}

func (r *SupplyRepository) Update(ctx context.Context, s *models.Supply) error {
	query := `
		UPDATE supplies
		SET name = $2, unit = $3, current_stock = GREATEST(0, $4::numeric), minimum_stock = $5,
		    cost_per_unit = $6, category = $7, active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING current_stock, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		s.ID, s.Name, s.Unit, s.CurrentStock, s.MinimumStock, s.CostPerUnit, s.Category, s.Active,
	).Scan(&s.CurrentStock, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update supply: %w", err)
	}
	return nil
}

// CountLowStock returns how many active supplies sit at or below their
// minimum level. Used by the dashboard.
func (r *SupplyRepository) CountLowStock(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM supplies WHERE active AND current_stock <= minimum_stock",
	).Scan(&count)
	return count, err
}

func (r *SupplyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM supplies WHERE id = $1", id)
	return err
}
