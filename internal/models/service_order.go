package models

import "time"

// Service order statuses
const (
	OrderWaiting    = "waiting"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Payment methods
const (
	PaymentCash       = "cash"
	PaymentPix        = "pix"
	PaymentCredit     = "credit_card"
	PaymentDebit      = "debit_card"
	PaymentOnline     = "online"
)

type ServiceOrder struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	ClientID      string        `json:"client_id,omitempty"`
	ClientName    string        `json:"client_name"`
	VehiclePlate  string        `json:"vehicle_plate"`
	VehicleModel  string        `json:"vehicle_model,omitempty"`
	Services      []ServiceItem `json:"services"`
	EmployeeID    string        `json:"employee_id,omitempty"`
	EmployeeName  string        `json:"employee_name,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	StartedAt     *time.Time    `json:"started_at,omitempty"`
	FinishedAt    *time.Time    `json:"finished_at,omitempty"`
	CreatedDate   time.Time     `json:"created_date"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ComputeTotal returns the sum of the order's service price snapshots minus
// the discount. Total is never taken from client input (see CreateOrder).
func (o *ServiceOrder) ComputeTotal() float64 {
	var sum float64
	for _, s := range o.Services {
		sum += s.Price
	}
	total := sum - o.Discount
	if total < 0 {
		total = 0
	}
	return total
}

type CreateServiceOrderRequest struct {
	ClientID      string        `json:"client_id"`
	ClientName    string        `json:"client_name"`
	VehiclePlate  string        `json:"vehicle_plate"`
	VehicleModel  string        `json:"vehicle_model"`
	Services      []ServiceItem `json:"services"`
	EmployeeID    string        `json:"employee_id"`
	EmployeeName  string        `json:"employee_name"`
	PaymentMethod string        `json:"payment_method"`
	Discount      float64       `json:"discount"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}
