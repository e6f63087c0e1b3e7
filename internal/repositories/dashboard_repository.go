package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

// DashboardRepository runs the aggregate queries behind the dashboard. All
// "today" windows are computed by the caller in local business time and
// passed in as bounds so the queries stay timezone-agnostic.
type DashboardRepository struct {
	DB *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) GetStats(ctx context.Context, today, monthStart string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE created_date::date = $1::date),
		       COUNT(*) FILTER (WHERE status = 'waiting'),
		       COUNT(*) FILTER (WHERE status = 'in_progress'),
		       COUNT(*) FILTER (WHERE status = 'completed' AND finished_at::date = $1::date),
		       COALESCE(SUM(total) FILTER (WHERE status = 'completed' AND finished_at::date = $1::date), 0),
		       COALESCE(SUM(total) FILTER (WHERE status = 'completed' AND finished_at::date >= $2::date), 0)
		FROM service_orders
	`, today, monthStart).Scan(
		&stats.OrdersToday, &stats.OrdersWaiting, &stats.OrdersInProgress,
		&stats.OrdersCompleted, &stats.RevenueToday, &stats.RevenueMonth,
	)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM appointments WHERE date = $1 AND status != 'cancelled'", today,
	).Scan(&stats.AppointmentsToday)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM supplies WHERE active = TRUE AND current_stock <= minimum_stock",
	).Scan(&stats.LowStockSupplies)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		"SELECT COALESCE(SUM(commission_value), 0) FROM employee_service_logs WHERE paid = FALSE",
	).Scan(&stats.UnpaidCommissions)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&stats.ActiveClients)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
