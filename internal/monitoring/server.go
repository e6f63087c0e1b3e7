package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"carwash-backend/internal/logger"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
	"carwash-backend/pkg/utils"
)

// Server is an operational sidecar on its own port: system and database
// stats for an ops dashboard, plus a websocket feed that pushes alerts
// (database down, low stock) to connected clients.
type Server struct {
	db           *pgxpool.Pool
	appointments *repositories.AppointmentRepository
	port         int

	alerts     []Alert
	alertsMux  sync.RWMutex
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Alert
}

type Alert struct {
	ID        int       `json:"id"`
	Severity  string    `json:"severity"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
}

type Stats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	ActiveAlerts      int     `json:"active_alerts"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskPercent       float64 `json:"disk_percent"`
	DBSize            string  `json:"db_size"`
	OrdersWaiting     int     `json:"orders_waiting"`
	OrdersInProgress  int     `json:"orders_in_progress"`
	AppointmentsToday int     `json:"appointments_today"`
	LowStockSupplies  int     `json:"low_stock_supplies"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewServer(db *pgxpool.Pool, port int) *Server {
	return &Server{
		db:           db,
		appointments: repositories.NewAppointmentRepository(db),
		port:         port,
		alerts:       make([]Alert, 0),
		clients:      make(map[*websocket.Conn]bool),
		broadcast:    make(chan Alert),
	}
}

func (s *Server) Start() {
	r := mux.NewRouter()
	r.HandleFunc("/api/stats", s.getStats).Methods("GET")
	r.HandleFunc("/api/alerts", s.getAlerts).Methods("GET")
	r.HandleFunc("/ws", s.handleWebSocket)

	go s.handleBroadcast()
	go s.watch()

	addr := fmt.Sprintf(":%d", s.port)
	logger.L().Info("monitoring server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.L().Error("monitoring server stopped", zap.Error(err))
	}
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, s.collectStats())
}

func (s *Server) getAlerts(w http.ResponseWriter, r *http.Request) {
	s.alertsMux.RLock()
	defer s.alertsMux.RUnlock()
	utils.JSON(w, http.StatusOK, s.alerts)
}

func (s *Server) collectStats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	s.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	s.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)

	var waiting, inProgress int
	s.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = 'waiting'),
		       COUNT(*) FILTER (WHERE status = 'in_progress')
		FROM service_orders
	`).Scan(&waiting, &inProgress)

	var lowStock int
	s.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM supplies WHERE active = TRUE AND current_stock <= minimum_stock",
	).Scan(&lowStock)

	apptsToday, _ := s.appointments.CountByDate(ctx, timeutil.Today())

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}
	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	s.alertsMux.RLock()
	activeAlerts := 0
	for _, a := range s.alerts {
		if !a.Resolved {
			activeAlerts++
		}
	}
	s.alertsMux.RUnlock()

	return Stats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		ActiveAlerts:      activeAlerts,
		CPUPercent:        cpuPercent,
		MemoryPercent:     memStats.UsedPercent,
		MemoryUsed:        formatBytes(memStats.Used),
		MemoryTotal:       formatBytes(memStats.Total),
		DiskPercent:       diskStats.UsedPercent,
		DBSize:            formatBytes(uint64(dbSizeBytes)),
		OrdersWaiting:     waiting,
		OrdersInProgress:  inProgress,
		AppointmentsToday: apptsToday,
		LowStockSupplies:  lowStock,
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.clientsMux.Lock()
			delete(s.clients, conn)
			s.clientsMux.Unlock()
			break
		}
	}
}

func (s *Server) handleBroadcast() {
	for alert := range s.broadcast {
		s.clientsMux.Lock()
		for client := range s.clients {
			if err := client.WriteJSON(alert); err != nil {
				client.Close()
				delete(s.clients, client)
			}
		}
		s.clientsMux.Unlock()
	}
}

func (s *Server) raise(severity, alertType, message string) {
	alert := Alert{
		Severity:  severity,
		Type:      alertType,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.alertsMux.Lock()
	alert.ID = len(s.alerts) + 1
	s.alerts = append(s.alerts, alert)
	s.alertsMux.Unlock()
	s.broadcast <- alert
}

// watch polls every 30s and raises alerts on database trouble and low stock.
// A low-stock alert fires once per observed count change, not on every tick.
func (s *Server) watch() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	lastLowStock := 0
	for range ticker.C {
		stats := s.collectStats()

		if stats.DatabaseStatus == "unhealthy" {
			s.raise("critical", "database_down", "Database is unreachable")
		}
		if stats.ResponseTime > 1000 {
			s.raise("warning", "high_latency",
				fmt.Sprintf("Database response time: %dms", stats.ResponseTime))
		}
		if stats.LowStockSupplies > lastLowStock {
			s.raise("warning", "low_stock",
				fmt.Sprintf("%d supplies at or below minimum stock", stats.LowStockSupplies))
		}
		lastLowStock = stats.LowStockSupplies
	}
}
