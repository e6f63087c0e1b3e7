package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

// ServiceSupplyRepository stores the bill-of-materials rows linking services
// to the supplies they consume.
type ServiceSupplyRepository struct {
	DB *pgxpool.Pool
}

func NewServiceSupplyRepository(db *pgxpool.Pool) *ServiceSupplyRepository {
	return &ServiceSupplyRepository{DB: db}
}

const serviceSupplySelect = `
	SELECT ss.id, ss.service_id, ss.supply_id, COALESCE(s.name, ''), ss.quantity_per_service, ss.created_at
	FROM service_supplies ss
	LEFT JOIN supplies s ON ss.supply_id = s.id
`

func (r *ServiceSupplyRepository) List(ctx context.Context) ([]*models.ServiceSupply, error) {
	rows, err := r.DB.Query(ctx, serviceSupplySelect+" ORDER BY ss.created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServiceSupplies(rows)
}

// ListByServiceIDs returns the bill-of-materials rows for the given services.
// Used by the completion workflow to resolve an order's consumption.
func (r *ServiceSupplyRepository) ListByServiceIDs(ctx context.Context, serviceIDs []string) ([]*models.ServiceSupply, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	rows, err := r.DB.Query(ctx, serviceSupplySelect+" WHERE ss.service_id = ANY($1) ORDER BY ss.created_at ASC", serviceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServiceSupplies(rows)
}

func (r *ServiceSupplyRepository) Create(ctx context.Context, ss *models.ServiceSupply) error {
	ss.ID = uuid.NewString()
	query := `
		INSERT INTO service_supplies (id, service_id, supply_id, quantity_per_service)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.DB.QueryRow(ctx, query,
		ss.ID, ss.ServiceID, ss.SupplyID, ss.QuantityPerService,
	).Scan(&ss.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service supply: %w", err)
	}
	return nil
}

func (r *ServiceSupplyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM service_supplies WHERE id = $1", id)
	return err
}

func scanServiceSupplies(rows pgx.Rows) ([]*models.ServiceSupply, error) {
	var list []*models.ServiceSupply
	for rows.Next() {
		ss := &models.ServiceSupply{}
		err := rows.Scan(&ss.ID, &ss.ServiceID, &ss.SupplyID, &ss.SupplyName, &ss.QuantityPerService, &ss.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, ss)
	}
	return list, rows.Err()
}
