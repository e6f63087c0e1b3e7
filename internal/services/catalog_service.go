package services

import (
	"context"
	"errors"

	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
)

// CatalogService manages the service catalog and each service's bill of
// materials (which supplies a service consumes, and how much).
type CatalogService struct {
	ServiceRepo       *repositories.ServiceRepository
	ServiceSupplyRepo *repositories.ServiceSupplyRepository
}

func NewCatalogService(
	serviceRepo *repositories.ServiceRepository,
	serviceSupplyRepo *repositories.ServiceSupplyRepository,
) *CatalogService {
	return &CatalogService{
		ServiceRepo:       serviceRepo,
		ServiceSupplyRepo: serviceSupplyRepo,
	}
}

// defaultDurationMinutes is applied when a service is created or updated
// without a duration.
const defaultDurationMinutes = 30

func buildService(req *models.CreateServiceRequest) (*models.Service, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}
	if duration < 0 {
		return nil, errors.New("duration_minutes must be positive")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: duration,
		IsCombo:         req.IsCombo,
		Active:          active,
	}, nil
}

func (s *CatalogService) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error) {
	svc, err := buildService(req)
	if err != nil {
		return nil, err
	}
	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.ServiceRepo.Get(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, sort string) ([]*models.Service, error) {
	return s.ServiceRepo.List(ctx, sort)
}

func (s *CatalogService) Update(ctx context.Context, svc *models.Service) error {
	if svc.Name == "" {
		return errors.New("name is required")
	}
	if svc.DurationMinutes == 0 {
		svc.DurationMinutes = defaultDurationMinutes
	}
	if svc.DurationMinutes < 0 {
		return errors.New("duration_minutes must be positive")
	}
	return s.ServiceRepo.Update(ctx, svc)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.ServiceRepo.Delete(ctx, id)
}

func (s *CatalogService) ListBOM(ctx context.Context) ([]*models.ServiceSupply, error) {
	return s.ServiceSupplyRepo.List(ctx)
}

func (s *CatalogService) AddBOMRow(ctx context.Context, req *models.CreateServiceSupplyRequest) (*models.ServiceSupply, error) {
	if req.ServiceID == "" || req.SupplyID == "" {
		return nil, errors.New("service_id and supply_id are required")
	}
	if req.QuantityPerService <= 0 {
		return nil, errors.New("quantity_per_service must be positive")
	}
	row := &models.ServiceSupply{
		ServiceID:          req.ServiceID,
		SupplyID:           req.SupplyID,
		QuantityPerService: req.QuantityPerService,
	}
	if err := s.ServiceSupplyRepo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *CatalogService) DeleteBOMRow(ctx context.Context, id string) error {
	return s.ServiceSupplyRepo.Delete(ctx, id)
}
