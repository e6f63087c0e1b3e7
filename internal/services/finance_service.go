package services

import (
	"context"
	"errors"
	"time"

	"carwash-backend/internal/cache"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

type FinanceService struct {
	Repo *repositories.TransactionRepository
}

func NewFinanceService(repo *repositories.TransactionRepository) *FinanceService {
	return &FinanceService{Repo: repo}
}

func (s *FinanceService) List(ctx context.Context, sort string) ([]*models.Transaction, error) {
	return s.Repo.List(ctx, sort)
}

func (s *FinanceService) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
		return nil, errors.New("type must be income or expense")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	date := req.Date
	if date == "" {
		date = timeutil.Today()
	} else if _, err := time.Parse(timeutil.DateLayout, date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	t := &models.Transaction{
		Type:          req.Type,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Date:          date,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return t, nil
}

func (s *FinanceService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// Summary defaults to the current month when no range is given.
func (s *FinanceService) Summary(ctx context.Context, from, to string) (*models.FinanceSummary, error) {
	now := timeutil.Now()
	if from == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(timeutil.DateLayout)
	}
	if to == "" {
		to = now.Format(timeutil.DateLayout)
	}
	return s.Repo.Summary(ctx, from, to)
}
