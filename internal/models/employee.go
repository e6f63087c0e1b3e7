package models

import "time"

// Employee roles
const (
	RoleWasher    = "washer"
	RolePolisher  = "polisher"
	RoleAttendant = "attendant"
	RoleManager   = "manager"
)

type Employee struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone,omitempty"`
	Role              string    `json:"role"`
	CommissionPercent float64   `json:"commission_percent"`
	HireDate          string    `json:"hire_date,omitempty"`
	Active            bool      `json:"active"`
	MonthlyGoal       int       `json:"monthly_goal"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Role              string  `json:"role"`
	CommissionPercent float64 `json:"commission_percent"`
	HireDate          string  `json:"hire_date"`
	Active            *bool   `json:"active"`
	MonthlyGoal       int     `json:"monthly_goal"`
}
