package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type EmployeeRepository struct {
	DB *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

var employeeSortColumns = map[string]bool{
	"name": true, "role": true, "created_at": true, "commission_percent": true,
}

func (r *EmployeeRepository) List(ctx context.Context, sort string) ([]*models.Employee, error) {
	query := `
		SELECT id, name, phone, role, commission_percent, hire_date, active, monthly_goal, created_at, updated_at
		FROM employees
	` + orderClause(sort, employeeSortColumns, "name ASC")

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e := &models.Employee{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.Phone, &e.Role, &e.CommissionPercent,
			&e.HireDate, &e.Active, &e.MonthlyGoal, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *EmployeeRepository) Get(ctx context.Context, id string) (*models.Employee, error) {
	e := &models.Employee{}
	query := `
		SELECT id, name, phone, role, commission_percent, hire_date, active, monthly_goal, created_at, updated_at
		FROM employees WHERE id = $1
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Phone, &e.Role, &e.CommissionPercent,
		&e.HireDate, &e.Active, &e.MonthlyGoal, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	e.ID = uuid.NewString()
	query := `
		INSERT INTO employees (id, name, phone, role, commission_percent, hire_date, active, monthly_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		e.ID, e.Name, e.Phone, e.Role, e.CommissionPercent, e.HireDate, e.Active, e.MonthlyGoal,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, phone = $3, role = $4, commission_percent = $5,
		    hire_date = $6, active = $7, monthly_goal = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		e.ID, e.Name, e.Phone, e.Role, e.CommissionPercent, e.HireDate, e.Active, e.MonthlyGoal,
	).Scan(&e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	return err
}
