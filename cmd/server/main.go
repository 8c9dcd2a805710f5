package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "selfstorage-backend/internal/api/http"
	"selfstorage-backend/internal/config"
	"selfstorage-backend/internal/logger"
	"selfstorage-backend/internal/repository/postgres"
	"selfstorage-backend/internal/security"
	"selfstorage-backend/internal/service"
	"selfstorage-backend/internal/storage"
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
	logger.Info("Starting SelfStorage Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Document Storage
	documentStorage, err := storage.NewDocumentStorage(cfg.Documents.Dir)
	if err != nil {
		logger.Error("Failed to initialize document storage", "error", err)
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	warehouseSvc := service.NewWarehouseService(
		store.WarehouseRepository,
		store.BoxRepository,
		store.StorageRuleRepository,
	)
	promoSvc := service.NewPromoService(store.PromoCodeRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.BoxRepository,
		store.WarehouseRepository,
		store.PromoCodeRepository,
		store.ConsentDocumentRepository,
		store.AdCampaignRepository,
		store.DeliveryRepository,
	)
	documentSvc := service.NewDocumentService(store.ConsentDocumentRepository, documentStorage)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      authSvc,
		Warehouse: warehouseSvc,
		Promo:     promoSvc,
		Rental:    rentalSvc,
		Document:  documentSvc,
		Tokens:    tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
