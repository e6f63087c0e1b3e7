package models

// DashboardStats is the aggregate snapshot shown on the operations dashboard.
// It is cached for a short TTL and invalidated on order and finance writes.
type DashboardStats struct {
	OrdersToday       int     `json:"orders_today"`
	OrdersWaiting     int     `json:"orders_waiting"`
	OrdersInProgress  int     `json:"orders_in_progress"`
	OrdersCompleted   int     `json:"orders_completed_today"`
	RevenueToday      float64 `json:"revenue_today"`
	RevenueMonth      float64 `json:"revenue_month"`
	AppointmentsToday int     `json:"appointments_today"`
	LowStockSupplies  int     `json:"low_stock_supplies"`
	UnpaidCommissions float64 `json:"unpaid_commissions"`
	ActiveClients     int     `json:"active_clients"`
}
