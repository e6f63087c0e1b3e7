package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type SystemSettingRepository struct {
	DB *pgxpool.Pool
}

func NewSystemSettingRepository(db *pgxpool.Pool) *SystemSettingRepository {
	return &SystemSettingRepository{DB: db}
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]*models.SystemSetting, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT id, setting_key, setting_value, description, updated_at FROM system_settings ORDER BY setting_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.SystemSetting
	for rows.Next() {
		s := &models.SystemSetting{}
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	s := &models.SystemSetting{}
	err := r.DB.QueryRow(ctx,
		"SELECT id, setting_key, setting_value, description, updated_at FROM system_settings WHERE setting_key = $1",
		key,
	).Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetValue returns the setting's value, or the fallback when the key is not
// seeded. Settings like opening_time gate behavior, so a missing row must not
// be an error.
func (r *SystemSettingRepository) GetValue(ctx context.Context, key, fallback string) string {
	var value string
	err := r.DB.QueryRow(ctx,
		"SELECT setting_value FROM system_settings WHERE setting_key = $1", key,
	).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

func (r *SystemSettingRepository) Upsert(ctx context.Context, key, value, description string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO system_settings (id, setting_key, setting_value, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()
	`, uuid.NewString(), key, value, description)
	return err
}
