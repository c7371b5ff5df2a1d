package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	httpapi "secondserve-backend/internal/api/http"
	"secondserve-backend/internal/config"
	"secondserve-backend/internal/jobs"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository/postgres"
	"secondserve-backend/internal/scheduler"
	"secondserve-backend/internal/security"
	"secondserve-backend/internal/service"
	"secondserve-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Second Serve backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_url", cfg.Server.BaseURL)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Auth.ResetSecret,
		time.Duration(cfg.Auth.ResetTokenExpiryMins)*time.Minute,
	)

	// Initialize Storage
	localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)
	authSvc := service.NewAuthService(
		store.DonorRepository,
		store.OrganizationRepository,
		tokenManager,
		emailSvc,
		cfg.Server.BaseURL,
	)
	sessionSvc := service.NewSessionService(
		store.SessionRepository,
		store.DonorRepository,
		store.OrganizationRepository,
		time.Duration(cfg.Session.TTLDays)*24*time.Hour,
	)
	donorSvc := service.NewDonorService(store.DonorRepository)
	orgSvc := service.NewOrganizationService(store.OrganizationRepository)
	donationSvc := service.NewDonationService(
		store.DonationRepository,
		store.DonorRepository,
		store.OrganizationRepository,
		emailSvc,
	)
	adminSvc := service.NewAdminService(store.OrganizationRepository, emailSvc)

	// Initialize Views
	renderer, err := httpapi.NewRenderer(cfg.Server.TemplateDir)
	if err != nil {
		logger.Error("Failed to load templates", "error", err, "dir", cfg.Server.TemplateDir)
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize HTTP handlers
	authMiddleware := httpapi.NewAuthMiddleware(sessionSvc)
	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc, sessionSvc, renderer),
		Donor:        httpapi.NewDonorHandler(donorSvc, orgSvc, donationSvc, renderer),
		Donation:     httpapi.NewDonationHandler(donationSvc, orgSvc, renderer),
		Organization: httpapi.NewOrganizationHandler(orgSvc, donationSvc, renderer),
		Admin:        httpapi.NewAdminHandler(adminSvc, renderer),
		Media:        httpapi.NewMediaHandler(localStorage, orgSvc),
	}
	router := httpapi.NewRouter(handlers, authMiddleware)

	// Start the cron scheduler alongside the server
	jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
