package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "crane-recon/docs"
	"crane-recon/internal/config"
	"crane-recon/internal/handler"
	"crane-recon/internal/matcher"
	"crane-recon/internal/middleware"
	"crane-recon/internal/repository"
	"crane-recon/internal/service"
	"crane-recon/pkg/logger"
)

// @title Bank Statement Reconciliation API
// @version 1.0
// @description Import bank statements and reconcile their transactions against pending payments

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.App.LogLevel)
	logger.GetLogger().Info("Starting Bank Statement Reconciliation Service")

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	logger.GetLogger().Info("Database connection established")

	// Initialize repositories
	txRepo := repository.NewBankTransactionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reconRepo := repository.NewReconciliationRepository(db)
	importRepo := repository.NewImportRepository(db)

	// Initialize services
	engine := matcher.NewReconciliationEngine(cfg.App.MatchTolerance, nil)
	logger.GetLogger().WithField("tolerance", engine.Tolerance().String()).Info("Matching engine ready")
	importService := service.NewImportService(importRepo, cfg.App.SessionTTL)
	reconService := service.NewReconciliationService(txRepo, paymentRepo, reconRepo, engine, cfg.App.SessionTTL)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, cfg.App.MaxUploadBytes)
	reconHandler := handler.NewReconciliationHandler(reconService)

	gin.SetMode(cfg.Server.GinMode)
	router := setupRouter(db, importHandler, reconHandler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.GetLogger().WithField("address", addr).Info("Server starting")

	if err := router.Run(addr); err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to start server")
	}
}

func connectDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func setupRouter(db *sql.DB, importHandler *handler.ImportHandler, reconHandler *handler.ReconciliationHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	importHandler.RegisterRoutes(v1)
	reconHandler.RegisterRoutes(v1)

	return router
}
