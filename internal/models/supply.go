package models

import "time"

// Supply units
const (
	UnitLiter      = "liter"
	UnitMilliliter = "milliliter"
	UnitKilogram   = "kilogram"
	UnitGram       = "gram"
	UnitCount      = "unit"
)

// Supply is a consumable inventory item (soap, wax, cloths...).
// CurrentStock is clamped at zero on every decrement.
type Supply struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	CurrentStock float64   `json:"current_stock"`
	MinimumStock float64   `json:"minimum_stock"`
	CostPerUnit  float64   `json:"cost_per_unit"`
	Category     string    `json:"category"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsLowStock reports whether the supply is at or below its minimum level.
func (s *Supply) IsLowStock() bool {
	return s.CurrentStock <= s.MinimumStock
}

type CreateSupplyRequest struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Category     string  `json:"category"`
	Active       *bool   `json:"active"`
}
