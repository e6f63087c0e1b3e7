package services

import (
	"context"
	"errors"

	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
)

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, errors.New("name and phone are required")
	}

	client := &models.Client{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Vehicles: req.Vehicles,
		Notes:    req.Notes,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ClientService) List(ctx context.Context, sort string) ([]*models.Client, error) {
	return s.Repo.List(ctx, sort)
}

func (s *ClientService) Update(ctx context.Context, client *models.Client) error {
	if client.Name == "" || client.Phone == "" {
		return errors.New("name and phone are required")
	}
	return s.Repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
