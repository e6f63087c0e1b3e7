package models

import "time"

// Well-known setting keys.
const (
	SettingBusinessName   = "business_name"
	SettingOpeningTime    = "opening_time"
	SettingClosingTime    = "closing_time"
	SettingRemindersOn    = "appointment_reminders_enabled"
	SettingOnlinePayments = "online_payment_enabled"
)

type SystemSetting struct {
	ID           string    `json:"id"`
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateSettingRequest struct {
	SettingValue string `json:"setting_value"`
}
