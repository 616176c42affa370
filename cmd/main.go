package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/caching"
	"github.com/zeeshankeerio/texstock/internal/config"
	"github.com/zeeshankeerio/texstock/internal/handlers"
	"github.com/zeeshankeerio/texstock/internal/jobs"
	"github.com/zeeshankeerio/texstock/internal/jobs/background"
	"github.com/zeeshankeerio/texstock/internal/logging"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
	"github.com/zeeshankeerio/texstock/internal/services"
	"github.com/zeeshankeerio/texstock/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().Str("env", cfg.App.Env).Msg("starting texstock")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := database.NewPool(ctx, cfg.DB.URL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	// Repositories
	vendorRepo := repositories.NewVendorRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	threadTypeRepo := repositories.NewThreadTypeRepository(pool)
	fabricTypeRepo := repositories.NewFabricTypeRepository(pool)
	purchaseRepo := repositories.NewThreadPurchaseRepository(pool)
	dyeingRepo := repositories.NewDyeingProcessRepository(pool)
	fabricRepo := repositories.NewFabricProductionRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	txnRepo := repositories.NewInventoryTransactionRepository(pool)
	salesRepo := repositories.NewSalesOrderRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	taskRepo := repositories.NewReconcileTaskRepository(pool)
	txRunner := repositories.NewTxRunner(pool)

	// Cache
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)

	// Reconciliation engine
	markups := reconcile.Markups{
		Thread: decimal.NewFromFloat(cfg.Jobs.ThreadMarkup),
		Fabric: decimal.NewFromFloat(cfg.Jobs.FabricMarkup),
	}
	reconciler := reconcile.NewReconciler(
		txRunner, taskRepo, purchaseRepo, dyeingRepo, fabricRepo,
		markups, cfg.Jobs.ReconcileMaxAttempts, log,
	)

	// Services
	vendorSvc := services.NewVendorService(vendorRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	typesSvc := services.NewTypesService(threadTypeRepo, fabricTypeRepo)
	purchaseSvc := services.NewThreadPurchaseService(purchaseRepo, vendorRepo, txRunner, reconciler, log)
	dyeingSvc := services.NewDyeingService(dyeingRepo, purchaseRepo, txRunner, reconciler, log)
	fabricSvc := services.NewFabricProductionService(fabricRepo, purchaseRepo, dyeingRepo, txRunner, reconciler, log)
	inventorySvc := services.NewInventoryService(
		inventoryRepo, txnRepo, purchaseRepo, dyeingRepo, fabricRepo,
		txRunner, reconciler, markups, cacheSvc, log,
	)
	salesSvc := services.NewSalesService(salesRepo, customerRepo, txRunner, markups, cacheSvc, log)
	paymentsSvc := services.NewPaymentsService(paymentRepo, salesRepo, txRunner)
	tasksSvc := services.NewReconcileTasksService(taskRepo, reconciler)

	// Background jobs
	alerts := jobs.NewInventoryAlertService(inventoryRepo, cacheSvc, log)
	scheduler, err := background.NewJobScheduler(
		reconciler, alerts,
		cfg.Jobs.ReconcileBatchSize,
		time.Duration(cfg.Jobs.LowStockSweepInterval)*time.Minute,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler initialization failed")
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("scheduler shutdown failed")
		}
	}()

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	h := &handlers.Handlers{
		Health:           handlers.NewHealthHandlers(pool, cacheSvc),
		Vendors:          handlers.NewVendorHandlers(vendorSvc),
		Customers:        handlers.NewCustomerHandlers(customerSvc),
		Types:            handlers.NewTypeHandlers(typesSvc),
		ThreadPurchases:  handlers.NewThreadPurchaseHandlers(purchaseSvc),
		Dyeing:           handlers.NewDyeingHandlers(dyeingSvc),
		FabricProduction: handlers.NewFabricProductionHandlers(fabricSvc),
		Inventory:        handlers.NewInventoryHandlers(inventorySvc),
		Sales:            handlers.NewSalesHandlers(salesSvc, paymentsSvc),
		ReconcileTasks:   handlers.NewReconcileTaskHandlers(tasksSvc),
	}
	h.RegisterRoutes(e)

	go func() {
		if err := e.Start(cfg.HTTP.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
