package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carwash-backend/internal/handlers"
	"carwash-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ServiceHandler,
	employeeHandler *handlers.EmployeeHandler,
	supplyHandler *handlers.SupplyHandler,
	appointmentHandler *handlers.AppointmentHandler,
	orderHandler *handlers.OrderHandler,
	financeHandler *handlers.FinanceHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	razorpayHandler *handlers.RazorpayHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Razorpay webhook authenticates via its own signature header.
	r.HandleFunc("/api/payments/webhook", razorpayHandler.HandleWebhook).Methods("POST")

	authAPI := r.PathPrefix("/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.List).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.Create).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.Get).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.Update).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.Delete).Methods("DELETE")

	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.Use(authMiddleware.Authenticate)
	servicesAPI.HandleFunc("", serviceHandler.List).Methods("GET")
	servicesAPI.HandleFunc("", serviceHandler.Create).Methods("POST")
	servicesAPI.HandleFunc("/{id}", serviceHandler.Get).Methods("GET")
	servicesAPI.HandleFunc("/{id}", serviceHandler.Update).Methods("PUT")
	servicesAPI.HandleFunc("/{id}", serviceHandler.Delete).Methods("DELETE")

	// Bill of materials (service -> supply consumption)
	bomAPI := r.PathPrefix("/api/service-supplies").Subrouter()
	bomAPI.Use(authMiddleware.Authenticate)
	bomAPI.HandleFunc("", serviceHandler.ListBOM).Methods("GET")
	bomAPI.HandleFunc("", serviceHandler.AddBOMRow).Methods("POST")
	bomAPI.HandleFunc("/{id}", serviceHandler.DeleteBOMRow).Methods("DELETE")

	employeesAPI := r.PathPrefix("/api/employees").Subrouter()
	employeesAPI.Use(authMiddleware.Authenticate)
	employeesAPI.HandleFunc("", employeeHandler.List).Methods("GET")
	employeesAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(employeeHandler.Create)).ServeHTTP).Methods("POST")
	employeesAPI.HandleFunc("/{id}", employeeHandler.Get).Methods("GET")
	employeesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(employeeHandler.Update)).ServeHTTP).Methods("PUT")
	employeesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(employeeHandler.Delete)).ServeHTTP).Methods("DELETE")
	employeesAPI.HandleFunc("/{id}/commission-report", reportHandler.CommissionReport).Methods("GET")

	logsAPI := r.PathPrefix("/api/employee-logs").Subrouter()
	logsAPI.Use(authMiddleware.Authenticate)
	logsAPI.HandleFunc("", employeeHandler.ListLogs).Methods("GET")
	logsAPI.HandleFunc("/{id}/paid", authMiddleware.RequireRole("admin")(http.HandlerFunc(employeeHandler.MarkLogPaid)).ServeHTTP).Methods("PATCH")

	suppliesAPI := r.PathPrefix("/api/supplies").Subrouter()
	suppliesAPI.Use(authMiddleware.Authenticate)
	suppliesAPI.HandleFunc("", supplyHandler.List).Methods("GET")
	suppliesAPI.HandleFunc("", supplyHandler.Create).Methods("POST")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.Get).Methods("GET")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.Update).Methods("PUT")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.Delete).Methods("DELETE")

	movementsAPI := r.PathPrefix("/api/movements").Subrouter()
	movementsAPI.Use(authMiddleware.Authenticate)
	movementsAPI.HandleFunc("", supplyHandler.ListMovements).Methods("GET")
	movementsAPI.HandleFunc("", supplyHandler.CreateMovement).Methods("POST")

	appointmentsAPI := r.PathPrefix("/api/appointments").Subrouter()
	appointmentsAPI.Use(authMiddleware.Authenticate)
	appointmentsAPI.HandleFunc("", appointmentHandler.List).Methods("GET")
	appointmentsAPI.HandleFunc("", appointmentHandler.Create).Methods("POST")
	appointmentsAPI.HandleFunc("/availability", appointmentHandler.Availability).Methods("GET")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.Get).Methods("GET")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.Update).Methods("PUT")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.Delete).Methods("DELETE")

	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.List).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.Create).Methods("POST")
	ordersAPI.HandleFunc("/{id}", orderHandler.Get).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.Update).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.Delete).Methods("DELETE")
	ordersAPI.HandleFunc("/{id}/status", orderHandler.ChangeStatus).Methods("POST")
	ordersAPI.HandleFunc("/{id}/receipt", reportHandler.OrderReceipt).Methods("GET")

	financeAPI := r.PathPrefix("/api/transactions").Subrouter()
	financeAPI.Use(authMiddleware.Authenticate)
	financeAPI.HandleFunc("", financeHandler.List).Methods("GET")
	financeAPI.HandleFunc("", financeHandler.Create).Methods("POST")
	financeAPI.HandleFunc("/summary", financeHandler.Summary).Methods("GET")
	financeAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(financeHandler.Delete)).ServeHTTP).Methods("DELETE")

	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", dashboardHandler.Stats).Methods("GET")

	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingsHandler.List).Methods("GET")
	settingsAPI.HandleFunc("/{key}", settingsHandler.Get).Methods("GET")
	settingsAPI.HandleFunc("/{key}", authMiddleware.RequireRole("admin")(http.HandlerFunc(settingsHandler.Update)).ServeHTTP).Methods("PUT")

	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("/status", razorpayHandler.Status).Methods("GET")
	paymentsAPI.HandleFunc("/create-order", razorpayHandler.CreateOrder).Methods("POST")
	paymentsAPI.HandleFunc("/verify", razorpayHandler.VerifyPayment).Methods("POST")

	return r
}
