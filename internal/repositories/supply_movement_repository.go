package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type SupplyMovementRepository struct {
	DB *pgxpool.Pool
}

func NewSupplyMovementRepository(db *pgxpool.Pool) *SupplyMovementRepository {
	return &SupplyMovementRepository{DB: db}
}

var movementSortColumns = map[string]bool{
	"date": true, "supply_name": true, "type": true, "quantity": true, "created_at": true,
}

const movementSelect = `
	SELECT id, supply_id, supply_name, type, quantity, reason, service_order_id,
	       employee_id, employee_name, date, notes, created_at
	FROM supply_movements
`

func (r *SupplyMovementRepository) List(ctx context.Context, sort string) ([]*models.SupplyMovement, error) {
	query := movementSelect + orderClause(sort, movementSortColumns, "created_at DESC")
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSupplyMovements(rows)
}

func (r *SupplyMovementRepository) ListBySupply(ctx context.Context, supplyID string) ([]*models.SupplyMovement, error) {
	rows, err := r.DB.Query(ctx, movementSelect+" WHERE supply_id = $1 ORDER BY created_at DESC", supplyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSupplyMovements(rows)
}

// Create records a manual movement and adjusts the supply's stock in the same
// transaction: "in" adds, "out" subtracts clamped at zero, "adjustment" sets
// the stock to the given quantity.
func (r *SupplyMovementRepository) Create(ctx context.Context, m *models.SupplyMovement) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	m.ID = uuid.NewString()
	err = tx.QueryRow(ctx, `
		INSERT INTO supply_movements (id, supply_id, supply_name, type, quantity, reason,
		                              service_order_id, employee_id, employee_name, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`, m.ID, m.SupplyID, m.SupplyName, m.Type, m.Quantity, m.Reason,
		m.ServiceOrderID, m.EmployeeID, m.EmployeeName, m.Date, m.Notes,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create supply movement: %w", err)
	}

	var stockUpdate string
	switch m.Type {
	case models.MovementIn:
		stockUpdate = "UPDATE supplies SET current_stock = current_stock + $2::numeric, updated_at = NOW() WHERE id = $1"
	case models.MovementOut:
		stockUpdate = "UPDATE supplies SET current_stock = GREATEST(0, current_stock - $2::numeric), updated_at = NOW() WHERE id = $1"
	case models.MovementAdjustment:
		stockUpdate = "UPDATE supplies SET current_stock = GREATEST(0, $2::numeric), updated_at = NOW() WHERE id = $1"
	default:
		return fmt.Errorf("unknown movement type %q", m.Type)
	}
	if _, err := tx.Exec(ctx, stockUpdate, m.SupplyID, m.Quantity); err != nil {
		return fmt.Errorf("failed to adjust supply stock: %w", err)
	}

	return tx.Commit(ctx)
}

func scanSupplyMovements(rows pgx.Rows) ([]*models.SupplyMovement, error) {
	var list []*models.SupplyMovement
	for rows.Next() {
		m := &models.SupplyMovement{}
		err := rows.Scan(
			&m.ID, &m.SupplyID, &m.SupplyName, &m.Type, &m.Quantity, &m.Reason, &m.ServiceOrderID,
			&m.EmployeeID, &m.EmployeeName, &m.Date, &m.Notes, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
