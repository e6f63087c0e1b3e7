package models

import "time"

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentNoShow    = "no_show"
	AppointmentCancelled = "cancelled"
)

// ServiceItem is a price snapshot of one service at booking/order time.
// It is deliberately not a live reference: later catalog price changes must
// not alter existing appointments or orders.
type ServiceItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

type Appointment struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id,omitempty"`
	ClientName   string        `json:"client_name"`
	ClientPhone  string        `json:"client_phone,omitempty"`
	VehiclePlate string        `json:"vehicle_plate,omitempty"`
	VehicleModel string        `json:"vehicle_model,omitempty"`
	Services     []ServiceItem `json:"services"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Time         string        `json:"time"` // slot string, e.g. "14:30"
	Status       string        `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateAppointmentRequest struct {
	ClientID     string        `json:"client_id"`
	ClientName   string        `json:"client_name"`
	ClientPhone  string        `json:"client_phone"`
	VehiclePlate string        `json:"vehicle_plate"`
	VehicleModel string        `json:"vehicle_model"`
	Services     []ServiceItem `json:"services"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Notes        string        `json:"notes"`
}

// SlotAvailability is one grid entry returned by the availability endpoint.
type SlotAvailability struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}
