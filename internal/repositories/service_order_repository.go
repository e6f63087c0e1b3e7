package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
	"carwash-backend/internal/workflow"
)

type ServiceOrderRepository struct {
	DB *pgxpool.Pool
}

func NewServiceOrderRepository(db *pgxpool.Pool) *ServiceOrderRepository {
	return &ServiceOrderRepository{DB: db}
}

var orderSortColumns = map[string]bool{
	"order_number": true, "client_name": true, "total": true,
	"status": true, "created_date": true, "updated_at": true,
}

const orderSelect = `
	SELECT id, order_number, client_id, client_name, vehicle_plate, vehicle_model,
	       services, employee_id, employee_name, payment_method, discount, total,
	       status, started_at, finished_at, created_date, updated_at
	FROM service_orders
`

// GenerateOrderNumber uses a database sequence so concurrent creates never
// collide.
func (r *ServiceOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('order_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next order number: %w", err)
	}
	return fmt.Sprintf("OS-%06d", nextNum), nil
}

func (r *ServiceOrderRepository) List(ctx context.Context, sort string) ([]*models.ServiceOrder, error) {
	query := orderSelect + orderClause(sort, orderSortColumns, "created_date DESC")
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServiceOrders(rows)
}

func (r *ServiceOrderRepository) ListByStatus(ctx context.Context, status string) ([]*models.ServiceOrder, error) {
	rows, err := r.DB.Query(ctx, orderSelect+" WHERE status = $1 ORDER BY created_date DESC", status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServiceOrders(rows)
}

func (r *ServiceOrderRepository) Get(ctx context.Context, id string) (*models.ServiceOrder, error) {
	o := &models.ServiceOrder{}
	err := r.DB.QueryRow(ctx, orderSelect+" WHERE id = $1", id).Scan(
		&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &o.VehiclePlate, &o.VehicleModel,
		&o.Services, &o.EmployeeID, &o.EmployeeName, &o.PaymentMethod, &o.Discount, &o.Total,
		&o.Status, &o.StartedAt, &o.FinishedAt, &o.CreatedDate, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *ServiceOrderRepository) Create(ctx context.Context, o *models.ServiceOrder) error {
	o.ID = uuid.NewString()
	if o.Services == nil {
		o.Services = []models.ServiceItem{}
	}
	if o.OrderNumber == "" {
		orderNumber, err := r.GenerateOrderNumber(ctx)
		if err != nil {
			return err
		}
		o.OrderNumber = orderNumber
	}
	o.Total = o.ComputeTotal()

	query := `
		INSERT INTO service_orders (id, order_number, client_id, client_name, vehicle_plate,
		                            vehicle_model, services, employee_id, employee_name,
		                            payment_method, discount, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_date, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		o.ID, o.OrderNumber, o.ClientID, o.ClientName, o.VehiclePlate,
		o.VehicleModel, o.Services, o.EmployeeID, o.EmployeeName,
		o.PaymentMethod, o.Discount, o.Total, o.Status,
	).Scan(&o.CreatedDate, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service order: %w", err)
	}
	return nil
}

// Update rewrites the order's editable fields and recomputes the stored total
// from the service snapshots and discount.
func (r *ServiceOrderRepository) Update(ctx context.Context, o *models.ServiceOrder) error {
	if o.Services == nil {
		o.Services = []models.ServiceItem{}
	}
	o.Total = o.ComputeTotal()
	query := `
		UPDATE service_orders
		SET client_id = $2, client_name = $3, vehicle_plate = $4, vehicle_model = $5,
		    services = $6, employee_id = $7, employee_name = $8, payment_method = $9,
		    discount = $10, total = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		o.ID, o.ClientID, o.ClientName, o.VehiclePlate, o.VehicleModel,
		o.Services, o.EmployeeID, o.EmployeeName, o.PaymentMethod,
		o.Discount, o.Total,
	).Scan(&o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update service order: %w", err)
	}
	return nil
}

func (r *ServiceOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM service_orders WHERE id = $1", id)
	return err
}

// SetStatus changes the order status without completion side effects. Used
// for the waiting / in_progress / cancelled transitions; in_progress also
// stamps started_at once.
func (r *ServiceOrderRepository) SetStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE service_orders
		SET status = $2,
		    started_at = CASE WHEN $2 = 'in_progress' AND started_at IS NULL THEN NOW() ELSE started_at END,
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.DB.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ServiceOrderRepository) SetPaymentMethod(ctx context.Context, id, method string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE service_orders SET payment_method = $2, updated_at = NOW() WHERE id = $1",
		id, method)
	return err
}

// ApplyCompletion writes every side effect of completing an order in one
// transaction. The first statement is a compare-and-set on finished_at: if it
// matches zero rows the order was already completed (or raced another
// completion) and nothing at all is applied.
func (r *ServiceOrderRepository) ApplyCompletion(ctx context.Context, plan *workflow.CompletionPlan) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE service_orders
		SET status = 'completed', finished_at = $2, updated_at = NOW()
		WHERE id = $1 AND finished_at IS NULL
	`, plan.OrderID, plan.FinishedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workflow.ErrAlreadyCompleted
	}

	if plan.CommissionLog != nil {
		cl := plan.CommissionLog
		_, err = tx.Exec(ctx, `
			INSERT INTO employee_service_logs (id, employee_id, employee_name, service_order_id,
			                                   order_number, service_name, service_value,
			                                   commission_percent, commission_value, date, paid)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, uuid.NewString(), cl.EmployeeID, cl.EmployeeName, cl.ServiceOrderID,
			cl.OrderNumber, cl.ServiceName, cl.ServiceValue,
			cl.CommissionPercent, cl.CommissionValue, cl.Date, cl.Paid)
		if err != nil {
			return fmt.Errorf("failed to insert commission log: %w", err)
		}
	}

	for _, m := range plan.Movements {
		_, err = tx.Exec(ctx, `
			INSERT INTO supply_movements (id, supply_id, supply_name, type, quantity, reason,
			                              service_order_id, employee_id, employee_name, date, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, uuid.NewString(), m.SupplyID, m.SupplyName, m.Type, m.Quantity, m.Reason,
			m.ServiceOrderID, m.EmployeeID, m.EmployeeName, m.Date, m.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert supply movement: %w", err)
		}
	}

	// Stock never goes negative even if movements were recorded against a
	// level that changed since the plan was built.
	for supplyID, qty := range deductions(plan) {
		_, err = tx.Exec(ctx, `
			UPDATE supplies
			SET current_stock = GREATEST(0, current_stock - $2::numeric), updated_at = NOW()
			WHERE id = $1
		`, supplyID, qty)
		if err != nil {
			return fmt.Errorf("failed to deduct supply stock: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// deductions totals the movement quantities per supply so each supply gets a
// single UPDATE regardless of how many service lines consumed it.
func deductions(plan *workflow.CompletionPlan) map[string]float64 {
	totals := make(map[string]float64, len(plan.StockLevels))
	for _, m := range plan.Movements {
		totals[m.SupplyID] += m.Quantity
	}
	return totals
}

func scanServiceOrders(rows pgx.Rows) ([]*models.ServiceOrder, error) {
	var list []*models.ServiceOrder
	for rows.Next() {
		o := &models.ServiceOrder{}
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &o.VehiclePlate, &o.VehicleModel,
			&o.Services, &o.EmployeeID, &o.EmployeeName, &o.PaymentMethod, &o.Discount, &o.Total,
			&o.Status, &o.StartedAt, &o.FinishedAt, &o.CreatedDate, &o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
