package main

import (
	"fmt"
	"net/http"
	"time"

	"database/sql"

	"github.com/Hemanth-Kumar-P/weekly/internal/config"
	"github.com/Hemanth-Kumar-P/weekly/internal/handler"
	"github.com/Hemanth-Kumar-P/weekly/internal/middleware"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/Hemanth-Kumar-P/weekly/internal/service"
	"github.com/Hemanth-Kumar-P/weekly/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load .env before config so its values reach both; environment may
	// already be set another way
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	var mailer *email.Sender
	if cfg.MailEnabled() {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, logger, cfg, mailer)
	if err := svc.EnsureDefaultAdmin(); err != nil {
		logger.Fatalf("Failed to create default admin: %v", err)
	}
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	// Public routes
	api.HandleFunc("/admin/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/admin/change-password", h.ChangePassword).Methods("POST")
	authRouter.HandleFunc("/admin/stats", h.Stats).Methods("GET")
	authRouter.HandleFunc("/customers", h.ListCustomers).Methods("GET")
	authRouter.HandleFunc("/customers", h.CreateCustomer).Methods("POST")
	authRouter.HandleFunc("/customers/search", h.SearchCustomers).Methods("GET")
	authRouter.HandleFunc("/customers/phone/{phone}", h.GetCustomersByPhone).Methods("GET")
	authRouter.HandleFunc("/customers/{id:[0-9]+}", h.GetCustomer).Methods("GET")
	authRouter.HandleFunc("/customers/{id:[0-9]+}", h.UpdateCustomer).Methods("PUT")
	authRouter.HandleFunc("/customers/{id:[0-9]+}", h.DeleteCustomer).Methods("DELETE")
	authRouter.HandleFunc("/payments/customer/{customerId:[0-9]+}", h.PaymentsByCustomer).Methods("GET")
	authRouter.HandleFunc("/payments/reports", h.PaymentReports).Methods("GET")
	authRouter.HandleFunc("/payments/{paymentId:[0-9]+}/status", h.UpdatePaymentStatus).Methods("PUT")
	authRouter.HandleFunc("/payments/{paymentId:[0-9]+}", h.DeletePayment).Methods("DELETE")

	// Weekly summary job; reporting only, never mutates payment status
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SummaryCron, svc.WeeklySummary); err != nil {
		logger.Fatalf("Failed to schedule weekly summary: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
