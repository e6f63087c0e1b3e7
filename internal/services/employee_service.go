package services

import (
	"context"
	"errors"

	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
)

type EmployeeService struct {
	Repo    *repositories.EmployeeRepository
	LogRepo *repositories.EmployeeLogRepository
}

func NewEmployeeService(repo *repositories.EmployeeRepository, logRepo *repositories.EmployeeLogRepository) *EmployeeService {
	return &EmployeeService{Repo: repo, LogRepo: logRepo}
}

func (s *EmployeeService) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.CommissionPercent < 0 || req.CommissionPercent > 100 {
		return nil, errors.New("commission_percent must be between 0 and 100")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	employee := &models.Employee{
		Name:              req.Name,
		Phone:             req.Phone,
		Role:              req.Role,
		CommissionPercent: req.CommissionPercent,
		HireDate:          req.HireDate,
		Active:            active,
		MonthlyGoal:       req.MonthlyGoal,
	}
	if err := s.Repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	return s.Repo.Get(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, sort string) ([]*models.Employee, error) {
	return s.Repo.List(ctx, sort)
}

func (s *EmployeeService) Update(ctx context.Context, employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("name is required")
	}
	if employee.CommissionPercent < 0 || employee.CommissionPercent > 100 {
		return errors.New("commission_percent must be between 0 and 100")
	}
	return s.Repo.Update(ctx, employee)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *EmployeeService) ListLogs(ctx context.Context, sort string) ([]*models.EmployeeServiceLog, error) {
	return s.LogRepo.List(ctx, sort)
}

func (s *EmployeeService) ListLogsByEmployee(ctx context.Context, employeeID string) ([]*models.EmployeeServiceLog, error) {
	return s.LogRepo.ListByEmployee(ctx, employeeID)
}

func (s *EmployeeService) MarkLogPaid(ctx context.Context, logID string, paid bool) error {
	return s.LogRepo.SetPaid(ctx, logID, paid)
}
