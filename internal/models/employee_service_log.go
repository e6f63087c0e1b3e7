package models

import "time"

// EmployeeServiceLog records the commission owed to an employee for one
// completed service order. Rows are created only by the order completion
// workflow; the paid flag is the only field edited afterwards.
type EmployeeServiceLog struct {
	ID                string    `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	EmployeeName      string    `json:"employee_name"`
	ServiceOrderID    string    `json:"service_order_id"`
	OrderNumber       string    `json:"order_number"`
	ServiceName       string    `json:"service_name"`
	ServiceValue      float64   `json:"service_value"`
	CommissionPercent float64   `json:"commission_percent"`
	CommissionValue   float64   `json:"commission_value"`
	Date              string    `json:"date"` // YYYY-MM-DD
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"created_at"`
}

type MarkLogPaidRequest struct {
	Paid bool `json:"paid"`
}
