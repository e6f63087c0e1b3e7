package models

import "time"

// Movement types
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

// Movement reasons
const (
	ReasonPurchase           = "purchase"
	ReasonServiceConsumption = "service_consumption"
	ReasonWaste              = "waste"
	ReasonExpired            = "expired"
	ReasonInventoryAdjust    = "inventory_adjustment"
)

// SupplyMovement is an append-only record of a single stock change. Stock
// history is reconstructed from movements independently of the supply's
// current_stock snapshot.
type SupplyMovement struct {
	ID             string    `json:"id"`
	SupplyID       string    `json:"supply_id"`
	SupplyName     string    `json:"supply_name"`
	Type           string    `json:"type"`
	Quantity       float64   `json:"quantity"`
	Reason         string    `json:"reason"`
	ServiceOrderID string    `json:"service_order_id,omitempty"`
	EmployeeID     string    `json:"employee_id,omitempty"`
	EmployeeName   string    `json:"employee_name,omitempty"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateMovementRequest struct {
	SupplyID string  `json:"supply_id"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}
