package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash-backend/internal/models"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func testOrder() *models.ServiceOrder {
	return &models.ServiceOrder{
		ID:           "ord-1",
		OrderNumber:  "OS-000042",
		ClientName:   "Carlos Mendes",
		VehiclePlate: "ABC1D23",
		Services: []models.ServiceItem{
			{ServiceID: "svc-wash", ServiceName: "Complete Wash", Price: 60},
			{ServiceID: "svc-wax", ServiceName: "Wax", Price: 40},
		},
		EmployeeID:   "emp-1",
		EmployeeName: "Joana Silva",
		Discount:     0,
		Total:        100,
		Status:       models.OrderInProgress,
	}
}

func TestBuildCompletionPlan_Commission(t *testing.T) {
	order := testOrder()
	employee := &models.Employee{ID: "emp-1", Name: "Joana Silva", CommissionPercent: 15}

	plan, err := BuildCompletionPlan(order, employee, nil, nil, testNow)
	require.NoError(t, err)

	require.NotNil(t, plan.CommissionLog)
	log := plan.CommissionLog
	assert.Equal(t, "emp-1", log.EmployeeID)
	assert.Equal(t, "ord-1", log.ServiceOrderID)
	assert.Equal(t, "OS-000042", log.OrderNumber)
	assert.Equal(t, "Complete Wash, Wax", log.ServiceName)
	assert.Equal(t, 100.0, log.ServiceValue)
	assert.Equal(t, 15.0, log.CommissionPercent)
	assert.Equal(t, 15.0, log.CommissionValue)
	assert.Equal(t, "2026-03-10", log.Date)
	assert.False(t, log.Paid)
}

func TestBuildCompletionPlan_NoCommissionWithoutRate(t *testing.T) {
	order := testOrder()
	employee := &models.Employee{ID: "emp-1", Name: "Joana Silva", CommissionPercent: 0}

	plan, err := BuildCompletionPlan(order, employee, nil, nil, testNow)
	require.NoError(t, err)
	assert.Nil(t, plan.CommissionLog, "zero commission rate must produce no log")
}

func TestBuildCompletionPlan_NoCommissionWithoutEmployee(t *testing.T) {
	order := testOrder()
	order.EmployeeID = ""
	order.EmployeeName = ""

	plan, err := BuildCompletionPlan(order, nil, nil, nil, testNow)
	require.NoError(t, err)
	assert.Nil(t, plan.CommissionLog, "unassigned order must produce no log")
}

func TestBuildCompletionPlan_StockFloor(t *testing.T) {
	order := testOrder()
	order.Services = order.Services[:1] // only svc-wash

	bom := []*models.ServiceSupply{
		{ID: "bom-1", ServiceID: "svc-wash", SupplyID: "sup-soap", QuantityPerService: 5},
	}
	supplies := []*models.Supply{
		{ID: "sup-soap", Name: "Soap", CurrentStock: 2},
	}

	plan, err := BuildCompletionPlan(order, nil, bom, supplies, testNow)
	require.NoError(t, err)
	require.Len(t, plan.Movements, 1)
	assert.Equal(t, 0.0, plan.StockLevels["sup-soap"], "stock must clamp at zero, never negative")
	assert.Equal(t, 5.0, plan.Movements[0].Quantity, "movement records the consumed quantity even when clamped")
}

func TestBuildCompletionPlan_MultiServiceDeduction(t *testing.T) {
	order := testOrder()
	// Both services consume the same supply at different rates.
	bom := []*models.ServiceSupply{
		{ID: "bom-1", ServiceID: "svc-wash", SupplyID: "sup-soap", QuantityPerService: 1.5},
		{ID: "bom-2", ServiceID: "svc-wax", SupplyID: "sup-soap", QuantityPerService: 0.5},
	}
	supplies := []*models.Supply{
		{ID: "sup-soap", Name: "Soap", CurrentStock: 10},
	}

	plan, err := BuildCompletionPlan(order, nil, bom, supplies, testNow)
	require.NoError(t, err)

	// Two separate movements, no batching of identical supply deductions.
	require.Len(t, plan.Movements, 2)
	assert.Equal(t, 1.5, plan.Movements[0].Quantity)
	assert.Equal(t, 0.5, plan.Movements[1].Quantity)
	assert.Equal(t, 8.0, plan.StockLevels["sup-soap"], "net decrease must be q1+q2")

	for _, m := range plan.Movements {
		assert.Equal(t, models.MovementOut, m.Type)
		assert.Equal(t, models.ReasonServiceConsumption, m.Reason)
		assert.Equal(t, "ord-1", m.ServiceOrderID)
		assert.Equal(t, "emp-1", m.EmployeeID)
		assert.Equal(t, "Joana Silva", m.EmployeeName)
		assert.Equal(t, "2026-03-10", m.Date)
	}
}

func TestBuildCompletionPlan_MissingSupplySkippedSilently(t *testing.T) {
	order := testOrder()
	bom := []*models.ServiceSupply{
		{ID: "bom-1", ServiceID: "svc-wash", SupplyID: "sup-gone", QuantityPerService: 2},
		{ID: "bom-2", ServiceID: "svc-wax", SupplyID: "sup-soap", QuantityPerService: 1},
	}
	supplies := []*models.Supply{
		{ID: "sup-soap", Name: "Soap", CurrentStock: 4},
	}

	plan, err := BuildCompletionPlan(order, nil, bom, supplies, testNow)
	require.NoError(t, err, "a stale bill-of-materials row must not fail the completion")

	require.Len(t, plan.Movements, 1)
	assert.Equal(t, "sup-soap", plan.Movements[0].SupplyID)
	assert.Equal(t, 3.0, plan.StockLevels["sup-soap"])
	assert.Equal(t, 1, plan.MissingSupplies, "skipped rows must be counted for observability")
}

func TestBuildCompletionPlan_AlreadyCompleted(t *testing.T) {
	order := testOrder()
	finished := testNow.Add(-time.Hour)
	order.FinishedAt = &finished
	employee := &models.Employee{ID: "emp-1", CommissionPercent: 15}

	plan, err := BuildCompletionPlan(order, employee, nil, nil, testNow)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Nil(t, plan, "a second completion must produce no records at all")
}

func TestBuildCompletionPlan_DiscountScenario(t *testing.T) {
	// Order total=200, discount=20: total must be 180 regardless of how many
	// services contribute; a 10% employee yields one log of 18.00.
	order := &models.ServiceOrder{
		ID:          "ord-2",
		OrderNumber: "OS-000043",
		Services: []models.ServiceItem{
			{ServiceID: "s1", ServiceName: "Wash", Price: 120},
			{ServiceID: "s2", ServiceName: "Polish", Price: 80},
		},
		EmployeeID:   "emp-2",
		EmployeeName: "Rafael Costa",
		Discount:     20,
	}
	order.Total = order.ComputeTotal()
	require.Equal(t, 180.0, order.Total)

	employee := &models.Employee{ID: "emp-2", CommissionPercent: 10}
	plan, err := BuildCompletionPlan(order, employee, nil, nil, testNow)
	require.NoError(t, err)
	require.NotNil(t, plan.CommissionLog)
	assert.Equal(t, 18.0, plan.CommissionLog.CommissionValue)
}

func TestComputeTotal_Recomputed(t *testing.T) {
	order := &models.ServiceOrder{
		Services: []models.ServiceItem{{Price: 50}, {Price: 30}},
		Discount: 100,
	}
	assert.Equal(t, 0.0, order.ComputeTotal(), "total never goes negative")

	order.Discount = 20
	assert.Equal(t, 60.0, order.ComputeTotal())
}
