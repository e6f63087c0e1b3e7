package models

import "time"

// ServiceSupply is one bill-of-materials row: performing the referenced
// service consumes QuantityPerService of the referenced supply. A service may
// have any number of rows.
type ServiceSupply struct {
	ID                 string    `json:"id"`
	ServiceID          string    `json:"service_id"`
	SupplyID           string    `json:"supply_id"`
	SupplyName         string    `json:"supply_name"`
	QuantityPerService float64   `json:"quantity_per_service"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateServiceSupplyRequest struct {
	ServiceID          string  `json:"service_id"`
	SupplyID           string  `json:"supply_id"`
	QuantityPerService float64 `json:"quantity_per_service"`
}
