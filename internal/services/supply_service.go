package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"carwash-backend/internal/logger"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

type SupplyService struct {
	Repo         *repositories.SupplyRepository
	MovementRepo *repositories.SupplyMovementRepository
}

func NewSupplyService(repo *repositories.SupplyRepository, movementRepo *repositories.SupplyMovementRepository) *SupplyService {
	return &SupplyService{Repo: repo, MovementRepo: movementRepo}
}

func (s *SupplyService) Create(ctx context.Context, req *models.CreateSupplyRequest) (*models.Supply, error) {
	if req.Name == "" || req.Unit == "" {
		return nil, errors.New("name and unit are required")
	}
	if req.CurrentStock < 0 || req.MinimumStock < 0 {
		return nil, errors.New("stock levels must not be negative")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	supply := &models.Supply{
		Name:         req.Name,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		CostPerUnit:  req.CostPerUnit,
		Category:     req.Category,
		Active:       active,
	}
	if err := s.Repo.Create(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

func (s *SupplyService) Get(ctx context.Context, id string) (*models.Supply, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SupplyService) List(ctx context.Context, sort string) ([]*models.Supply, error) {
	return s.Repo.List(ctx, sort)
}

func (s *SupplyService) Update(ctx context.Context, supply *models.Supply) error {
	if supply.Name == "" || supply.Unit == "" {
		return errors.New("name and unit are required")
	}
	return s.Repo.Update(ctx, supply)
}

func (s *SupplyService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *SupplyService) ListMovements(ctx context.Context, sort string) ([]*models.SupplyMovement, error) {
	return s.MovementRepo.List(ctx, sort)
}

func (s *SupplyService) ListMovementsBySupply(ctx context.Context, supplyID string) ([]*models.SupplyMovement, error) {
	return s.MovementRepo.ListBySupply(ctx, supplyID)
}

// RecordMovement registers a manual stock movement (purchase, waste,
// inventory adjustment...) and applies it to the supply's stock.
func (s *SupplyService) RecordMovement(ctx context.Context, req *models.CreateMovementRequest) (*models.SupplyMovement, error) {
	if req.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	switch req.Type {
	case models.MovementIn, models.MovementOut, models.MovementAdjustment:
	default:
		return nil, fmt.Errorf("invalid movement type %q", req.Type)
	}

	supply, err := s.Repo.Get(ctx, req.SupplyID)
	if err != nil {
		return nil, errors.New("supply not found")
	}

	date := req.Date
	if date == "" {
		date = timeutil.Today()
	}
	movement := &models.SupplyMovement{
		SupplyID:   supply.ID,
		SupplyName: supply.Name,
		Type:       req.Type,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		Date:       date,
		Notes:      req.Notes,
	}
	if err := s.MovementRepo.Create(ctx, movement); err != nil {
		return nil, err
	}

	if updated, err := s.Repo.Get(ctx, supply.ID); err == nil && updated.IsLowStock() {
		logger.L().Warn("supply at or below minimum stock",
			zap.String("supply", updated.Name),
			zap.Float64("current_stock", updated.CurrentStock),
			zap.Float64("minimum_stock", updated.MinimumStock))
	}
	return movement, nil
}
