package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/quoteline/backend/internal/application/billing"
	numberingapp "github.com/quoteline/backend/internal/application/numbering"
	procurementapp "github.com/quoteline/backend/internal/application/procurement"
	tradeapp "github.com/quoteline/backend/internal/application/trade"
	"github.com/quoteline/backend/internal/domain/billing"
	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/infrastructure/config"
	"github.com/quoteline/backend/internal/infrastructure/logger"
	"github.com/quoteline/backend/internal/infrastructure/persistence"
	"github.com/quoteline/backend/internal/interfaces/http/handler"
	"github.com/quoteline/backend/internal/interfaces/http/middleware"
	"github.com/quoteline/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Quoteline Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories and numbering stores
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	counterStore := persistence.NewGormCounterStore(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	vendorPoRepo := persistence.NewGormVendorPoRepository(db.DB)
	grnRepo := persistence.NewGormGrnRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	// Number generation and renumbering
	clock := shared.SystemClock()
	generator := numbering.NewGenerator(counterStore, settingsRepo, clock, log)
	migrator := numbering.NewMigrator(generator, counterStore, log)
	migrator.RegisterSource(numbering.DocTypeQuote, quoteRepo)
	migrator.RegisterSource(numbering.DocTypeVendorPo, vendorPoRepo)
	migrator.RegisterSource(numbering.DocTypeGrn, grnRepo)
	migrator.RegisterSource(numbering.DocTypeMasterInvoice, invoiceRepo.DocumentSource(billing.InvoiceKindMaster))
	migrator.RegisterSource(numbering.DocTypeChildInvoice, invoiceRepo.DocumentSource(billing.InvoiceKindChild))

	// Initialize application services
	numberingService := numberingapp.NewService(settingsRepo, counterStore, migrator, clock, log)
	quoteService := tradeapp.NewQuoteService(quoteRepo, generator, log)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, quoteRepo, generator, log)
	procurementService := procurementapp.NewService(vendorPoRepo, grnRepo, generator, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, generator, log)

	// Initialize handlers
	handlers := router.Handlers{
		Quote:       handler.NewQuoteHandler(quoteService),
		SalesOrder:  handler.NewSalesOrderHandler(salesOrderService),
		Procurement: handler.NewProcurementHandler(procurementService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Numbering:   handler.NewNumberingHandler(numberingService),
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	router.Setup(engine, handlers)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
