package services

import (
	"context"
	"encoding/json"
	"time"

	"carwash-backend/internal/cache"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

// DashboardService serves the dashboard snapshot through a short-TTL redis
// cache. A cache miss (or no redis at all) falls through to the aggregate
// queries.
type DashboardService struct {
	Repo *repositories.DashboardRepository
}

func NewDashboardService(repo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	if data, ok := cache.GetDashboardStats(ctx); ok {
		stats := &models.DashboardStats{}
		if err := json.Unmarshal(data, stats); err == nil {
			return stats, nil
		}
	}

	now := timeutil.Now()
	today := now.Format(timeutil.DateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(timeutil.DateLayout)

	stats, err := s.Repo.GetStats(ctx, today, monthStart)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		cache.SetDashboardStats(ctx, data)
	}
	return stats, nil
}
