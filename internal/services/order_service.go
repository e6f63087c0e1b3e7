package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carwash-backend/internal/cache"
	"carwash-backend/internal/logger"
	"carwash-backend/internal/metrics"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
	"carwash-backend/internal/workflow"
)

// OrderService owns the service order lifecycle. Completion is the heavy
// transition: it builds a workflow.CompletionPlan from current snapshots and
// hands it to the repository, which applies everything in one transaction.
type OrderService struct {
	orderRepo         *repositories.ServiceOrderRepository
	employeeRepo      *repositories.EmployeeRepository
	serviceSupplyRepo *repositories.ServiceSupplyRepository
	supplyRepo        *repositories.SupplyRepository
}

func NewOrderService(
	orderRepo *repositories.ServiceOrderRepository,
	employeeRepo *repositories.EmployeeRepository,
	serviceSupplyRepo *repositories.ServiceSupplyRepository,
	supplyRepo *repositories.SupplyRepository,
) *OrderService {
	return &OrderService{
		orderRepo:         orderRepo,
		employeeRepo:      employeeRepo,
		serviceSupplyRepo: serviceSupplyRepo,
		supplyRepo:        supplyRepo,
	}
}

func (s *OrderService) List(ctx context.Context, sort string) ([]*models.ServiceOrder, error) {
	return s.orderRepo.List(ctx, sort)
}

func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]*models.ServiceOrder, error) {
	switch status {
	case models.OrderWaiting, models.OrderInProgress, models.OrderCompleted, models.OrderCancelled:
	default:
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.orderRepo.ListByStatus(ctx, status)
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.ServiceOrder, error) {
	return s.orderRepo.Get(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error) {
	order := &models.ServiceOrder{
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		VehiclePlate:  req.VehiclePlate,
		VehicleModel:  req.VehicleModel,
		Services:      req.Services,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
		Status:        models.OrderWaiting,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, order *models.ServiceOrder) error {
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *OrderService) SetPaymentMethod(ctx context.Context, id, method string) error {
	return s.orderRepo.SetPaymentMethod(ctx, id, method)
}

// ChangeStatus routes a status transition. Completion runs the full side
// effect pipeline; every other status is a plain column update (in_progress
// also stamps started_at, handled in the repository).
func (s *OrderService) ChangeStatus(ctx context.Context, id, status string) (*models.ServiceOrder, error) {
	switch status {
	case models.OrderWaiting, models.OrderInProgress, models.OrderCancelled:
		if err := s.orderRepo.SetStatus(ctx, id, status); err != nil {
			return nil, err
		}
	case models.OrderCompleted:
		if err := s.Complete(ctx, id); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid order status %q", status)
	}
	cache.InvalidateDashboard(ctx)
	return s.orderRepo.Get(ctx, id)
}

// Complete runs the completion workflow for one order: commission log if the
// assigned employee earns one, plus a stock movement and clamped deduction
// per bill-of-materials row of each service on the order.
func (s *OrderService) Complete(ctx context.Context, id string) error {
	order, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if order.FinishedAt != nil {
		return workflow.ErrAlreadyCompleted
	}

	var employee *models.Employee
	if order.EmployeeID != "" {
		employee, err = s.employeeRepo.Get(ctx, order.EmployeeID)
		if err != nil {
			// A deleted employee should not block completion; the order just
			// earns no commission.
			logger.L().Warn("completion: employee lookup failed",
				zap.String("order_id", id),
				zap.String("employee_id", order.EmployeeID),
				zap.Error(err))
			employee = nil
		}
	}

	serviceIDs := make([]string, 0, len(order.Services))
	for _, line := range order.Services {
		serviceIDs = append(serviceIDs, line.ServiceID)
	}
	billOfMaterials, err := s.serviceSupplyRepo.ListByServiceIDs(ctx, serviceIDs)
	if err != nil {
		return err
	}
	supplies, err := s.supplyRepo.List(ctx, "")
	if err != nil {
		return err
	}

	plan, err := workflow.BuildCompletionPlan(order, employee, billOfMaterials, supplies, timeutil.Now())
	if err != nil {
		return err
	}

	if err := s.orderRepo.ApplyCompletion(ctx, plan); err != nil {
		return err
	}

	metrics.OrdersCompletedTotal.Inc()
	if plan.CommissionLog != nil {
		metrics.CommissionValueTotal.Add(plan.CommissionLog.CommissionValue)
	}
	metrics.SupplyDeductionsTotal.Add(float64(len(plan.Movements)))
	if plan.MissingSupplies > 0 {
		metrics.MissingSupplySkipsTotal.Add(float64(plan.MissingSupplies))
		logger.L().Warn("completion: skipped bill-of-materials rows with missing supplies",
			zap.String("order_id", id),
			zap.Int("skipped", plan.MissingSupplies))
	}

	logger.L().Info("service order completed",
		zap.String("order_id", id),
		zap.String("order_number", order.OrderNumber),
		zap.Int("movements", len(plan.Movements)),
		zap.Bool("commission", plan.CommissionLog != nil))

	return nil
}
