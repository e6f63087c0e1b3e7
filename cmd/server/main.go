package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"carwash-backend/internal/auth"
	"carwash-backend/internal/cache"
	"carwash-backend/internal/config"
	"carwash-backend/internal/database"
	"carwash-backend/internal/db"
	"carwash-backend/internal/handlers"
	"carwash-backend/internal/health"
	carwashhttp "carwash-backend/internal/http"
	"carwash-backend/internal/logger"
	"carwash-backend/internal/middleware"
	"carwash-backend/internal/monitoring"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	monitoringPort := flag.Int("monitoring-port", 9090, "Monitoring server port")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	pool := db.Connect(cfg)
	defer pool.Close()

	if err := cache.Init(); err != nil {
		log.Warn("redis cache unavailable, dashboard stats will not be cached", zap.Error(err))
	} else {
		log.Info("redis cache connected")
	}

	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	cancel()

	go monitoring.NewServer(pool, *monitoringPort).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	serviceRepo := repositories.NewServiceRepository(pool)
	employeeRepo := repositories.NewEmployeeRepository(pool)
	supplyRepo := repositories.NewSupplyRepository(pool)
	serviceSupplyRepo := repositories.NewServiceSupplyRepository(pool)
	appointmentRepo := repositories.NewAppointmentRepository(pool)
	orderRepo := repositories.NewServiceOrderRepository(pool)
	employeeLogRepo := repositories.NewEmployeeLogRepository(pool)
	movementRepo := repositories.NewSupplyMovementRepository(pool)
	transactionRepo := repositories.NewTransactionRepository(pool)
	settingRepo := repositories.NewSystemSettingRepository(pool)
	onlinePaymentRepo := repositories.NewOnlinePaymentRepository(pool)
	dashboardRepo := repositories.NewDashboardRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	clientService := services.NewClientService(clientRepo)
	catalogService := services.NewCatalogService(serviceRepo, serviceSupplyRepo)
	employeeService := services.NewEmployeeService(employeeRepo, employeeLogRepo)
	supplyService := services.NewSupplyService(supplyRepo, movementRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, settingRepo)
	orderService := services.NewOrderService(orderRepo, employeeRepo, serviceSupplyRepo, supplyRepo)
	financeService := services.NewFinanceService(transactionRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	settingsService := services.NewSettingsService(settingRepo)
	reportService := services.NewReportService(orderRepo, employeeRepo, employeeLogRepo, settingRepo)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret,
		onlinePaymentRepo, orderRepo, transactionRepo, settingRepo)
	reminderService := services.NewReminderService(cfg, appointmentRepo, settingRepo)
	backupService := services.NewBackupService(cfg)

	reminderService.StartScheduler()
	defer reminderService.Stop()
	backupService.StartScheduler()
	defer backupService.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	supplyHandler := handlers.NewSupplyHandler(supplyService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	orderHandler := handlers.NewOrderHandler(orderService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := carwashhttp.NewRouter(
		authHandler, clientHandler, serviceHandler, employeeHandler,
		supplyHandler, appointmentHandler, orderHandler, financeHandler,
		dashboardHandler, settingsHandler, razorpayHandler, reportHandler,
		healthHandler, authMiddleware,
	)

	handler := middleware.NewCORS(cfg)(
		middleware.PanicRecovery(
			middleware.RequestLogging(
				middleware.MetricsMiddleware(router))))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
