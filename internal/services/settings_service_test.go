package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"carwash-backend/internal/models"
)

// Validation failures must be rejected before any repository access, so a
// nil repo is fine here.
func TestSettingsUpdate_RejectsBadBusinessHours(t *testing.T) {
	s := NewSettingsService(nil)
	ctx := context.Background()

	assert.Error(t, s.Update(ctx, models.SettingOpeningTime, "8am"))
	assert.Error(t, s.Update(ctx, models.SettingOpeningTime, "08:15"))
	assert.Error(t, s.Update(ctx, models.SettingClosingTime, "25:00"))
	assert.Error(t, s.Update(ctx, models.SettingClosingTime, ""))
}

func TestSettingsUpdate_RejectsBadToggles(t *testing.T) {
	s := NewSettingsService(nil)
	ctx := context.Background()

	assert.Error(t, s.Update(ctx, models.SettingRemindersOn, "yes"))
	assert.Error(t, s.Update(ctx, models.SettingOnlinePayments, "1"))
}
