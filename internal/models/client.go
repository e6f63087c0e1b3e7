package models

import "time"

// Vehicle is one car registered to a client. Stored as a JSONB array on the
// client row, preserving insertion order.
type Vehicle struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
	Color string `json:"color,omitempty"`
	Year  string `json:"year,omitempty"`
}

type Client struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Vehicles      []Vehicle `json:"vehicles"`
	Notes         string    `json:"notes,omitempty"`
	LoyaltyPoints int       `json:"loyalty_points"`
	TotalVisits   int       `json:"total_visits"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Vehicles []Vehicle `json:"vehicles"`
	Notes    string    `json:"notes"`
}
