package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carwash_http_requests_total",
		Help: "Total HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carwash_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carwash_orders_completed_total",
		Help: "Service orders transitioned to completed",
	})

	CommissionValueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carwash_commission_value_total",
		Help: "Accumulated commission value from completed orders",
	})

	SupplyDeductionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carwash_supply_deductions_total",
		Help: "Stock deductions applied by order completions",
	})

	// MissingSupplySkipsTotal counts bill-of-materials rows skipped during
	// completion because the referenced supply no longer exists. The skip is
	// silent for the caller; this counter is how the gap stays visible.
	MissingSupplySkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carwash_missing_supply_skips_total",
		Help: "BOM rows skipped at completion due to a missing supply record",
	})

	SlotConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carwash_slot_conflicts_total",
		Help: "Appointment bookings rejected because the slot was taken",
	})
)
