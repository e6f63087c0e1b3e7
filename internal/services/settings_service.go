package services

import (
	"context"
	"errors"
	"time"

	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

type SettingsService struct {
	Repo *repositories.SystemSettingRepository
}

func NewSettingsService(repo *repositories.SystemSettingRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) List(ctx context.Context) ([]*models.SystemSetting, error) {
	return s.Repo.List(ctx)
}

func (s *SettingsService) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	return s.Repo.Get(ctx, key)
}

// Update validates well-known keys before writing. Business hours must be
// HH:MM on the half hour, or the availability grid cannot be built.
func (s *SettingsService) Update(ctx context.Context, key, value string) error {
	switch key {
	case models.SettingOpeningTime, models.SettingClosingTime:
		t, err := time.Parse(timeutil.TimeLayout, value)
		if err != nil {
			return errors.New("time must be HH:MM")
		}
		if m := t.Minute(); m != 0 && m != 30 {
			return errors.New("time must be on the half hour")
		}
	case models.SettingRemindersOn, models.SettingOnlinePayments:
		if value != "true" && value != "false" {
			return errors.New("value must be true or false")
		}
	}
	return s.Repo.Upsert(ctx, key, value, "")
}
