package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

// EmployeeLogRepository reads and settles commission logs. Log rows are only
// created inside ServiceOrderRepository.ApplyCompletion.
type EmployeeLogRepository struct {
	DB *pgxpool.Pool
}

func NewEmployeeLogRepository(db *pgxpool.Pool) *EmployeeLogRepository {
	return &EmployeeLogRepository{DB: db}
}

var employeeLogSortColumns = map[string]bool{
	"date": true, "employee_name": true, "commission_value": true, "paid": true, "created_at": true,
}

const employeeLogSelect = `
	SELECT id, employee_id, employee_name, service_order_id, order_number, service_name,
	       service_value, commission_percent, commission_value, date, paid, created_at
	FROM employee_service_logs
`

func (r *EmployeeLogRepository) List(ctx context.Context, sort string) ([]*models.EmployeeServiceLog, error) {
	query := employeeLogSelect + orderClause(sort, employeeLogSortColumns, "created_at DESC")
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployeeLogs(rows)
}

func (r *EmployeeLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.EmployeeServiceLog, error) {
	rows, err := r.DB.Query(ctx, employeeLogSelect+" WHERE employee_id = $1 ORDER BY created_at DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployeeLogs(rows)
}

func (r *EmployeeLogRepository) Get(ctx context.Context, id string) (*models.EmployeeServiceLog, error) {
	l := &models.EmployeeServiceLog{}
	err := r.DB.QueryRow(ctx, employeeLogSelect+" WHERE id = $1", id).Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.ServiceOrderID, &l.OrderNumber, &l.ServiceName,
		&l.ServiceValue, &l.CommissionPercent, &l.CommissionValue, &l.Date, &l.Paid, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *EmployeeLogRepository) SetPaid(ctx context.Context, id string, paid bool) error {
	tag, err := r.DB.Exec(ctx, "UPDATE employee_service_logs SET paid = $2 WHERE id = $1", id, paid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UnpaidTotalByEmployee sums outstanding commission per employee for the
// commission report.
func (r *EmployeeLogRepository) UnpaidTotalByEmployee(ctx context.Context, employeeID string) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		"SELECT COALESCE(SUM(commission_value), 0) FROM employee_service_logs WHERE employee_id = $1 AND paid = FALSE",
		employeeID,
	).Scan(&total)
	return total, err
}

func scanEmployeeLogs(rows pgx.Rows) ([]*models.EmployeeServiceLog, error) {
	var list []*models.EmployeeServiceLog
	for rows.Next() {
		l := &models.EmployeeServiceLog{}
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.EmployeeName, &l.ServiceOrderID, &l.OrderNumber, &l.ServiceName,
			&l.ServiceValue, &l.CommissionPercent, &l.CommissionValue, &l.Date, &l.Paid, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
