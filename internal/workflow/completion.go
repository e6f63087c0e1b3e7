package workflow

import (
	"errors"
	"strings"
	"time"

	"carwash-backend/internal/models"
)

// ErrAlreadyCompleted is returned when a completion is requested for an order
// whose finished_at is already set. The repository additionally enforces this
// with a compare-and-set inside the completion transaction, so a double fire
// racing past this check still applies nothing.
var ErrAlreadyCompleted = errors.New("service order already completed")

// CompletionPlan is everything the completion of one service order must
// write: at most one commission log, one stock movement per consumed
// bill-of-materials row, and the resulting stock level per touched supply.
// Building the plan has no side effects; applying it is the repository's job,
// in a single transaction.
type CompletionPlan struct {
	OrderID    string
	FinishedAt time.Time

	// CommissionLog is nil when the order has no employee or the employee's
	// commission rate is zero.
	CommissionLog *models.EmployeeServiceLog

	Movements   []*models.SupplyMovement
	StockLevels map[string]float64 // supply id -> stock after all deductions

	// MissingSupplies counts bill-of-materials rows that referenced a supply
	// that no longer exists. Those lines are skipped, not failed, but the
	// caller is expected to surface the count (metrics, warning log).
	MissingSupplies int
}

// BuildCompletionPlan evaluates the side effects of completing an order over
// read-only snapshots of the employee, the bill of materials, and the current
// supplies.
//
// Commission: one log row iff an employee is assigned and their rate is
// positive; value = order total x percent / 100.
//
// Inventory: every service line is matched against every bill-of-materials
// row for that service; each match yields one "out"/"service_consumption"
// movement and a stock decrement clamped at zero. The same supply consumed by
// two services is deducted twice, independently.
func BuildCompletionPlan(
	order *models.ServiceOrder,
	employee *models.Employee,
	billOfMaterials []*models.ServiceSupply,
	supplies []*models.Supply,
	now time.Time,
) (*CompletionPlan, error) {
	if order.FinishedAt != nil {
		return nil, ErrAlreadyCompleted
	}

	plan := &CompletionPlan{
		OrderID:     order.ID,
		FinishedAt:  now,
		StockLevels: make(map[string]float64),
	}
	today := now.Format("2006-01-02")

	if employee != nil && order.EmployeeID != "" && employee.CommissionPercent > 0 {
		names := make([]string, 0, len(order.Services))
		for _, s := range order.Services {
			names = append(names, s.ServiceName)
		}
		plan.CommissionLog = &models.EmployeeServiceLog{
			EmployeeID:        order.EmployeeID,
			EmployeeName:      order.EmployeeName,
			ServiceOrderID:    order.ID,
			OrderNumber:       order.OrderNumber,
			ServiceName:       strings.Join(names, ", "),
			ServiceValue:      order.Total,
			CommissionPercent: employee.CommissionPercent,
			CommissionValue:   order.Total * employee.CommissionPercent / 100,
			Date:              today,
			Paid:              false,
		}
	}

	supplyByID := make(map[string]*models.Supply, len(supplies))
	for _, s := range supplies {
		supplyByID[s.ID] = s
	}

	for _, line := range order.Services {
		for _, bom := range billOfMaterials {
			if bom.ServiceID != line.ServiceID {
				continue
			}
			supply, ok := supplyByID[bom.SupplyID]
			if !ok {
				// Stale bill-of-materials row; skip the line, count the gap.
				plan.MissingSupplies++
				continue
			}

			plan.Movements = append(plan.Movements, &models.SupplyMovement{
				SupplyID:       supply.ID,
				SupplyName:     supply.Name,
				Type:           models.MovementOut,
				Quantity:       bom.QuantityPerService,
				Reason:         models.ReasonServiceConsumption,
				ServiceOrderID: order.ID,
				EmployeeID:     order.EmployeeID,
				EmployeeName:   order.EmployeeName,
				Date:           today,
			})

			level, seen := plan.StockLevels[supply.ID]
			if !seen {
				level = supply.CurrentStock
			}
			level -= bom.QuantityPerService
			if level < 0 {
				level = 0
			}
			plan.StockLevels[supply.ID] = level
		}
	}

	return plan, nil
}
