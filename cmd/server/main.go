package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"checkout/internal/catalog"
	"checkout/internal/clock"
	"checkout/internal/config"
	"checkout/internal/infrastructure/logger"
	"checkout/internal/infrastructure/mysql"
	"checkout/internal/jobs"
	"checkout/internal/order"
	"checkout/internal/order/repository"
	"checkout/internal/server"
	"checkout/internal/tracking"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, "checkout")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}

	clk := clock.NewSystem()

	var orderRepo order.Repository
	var retentionJob *jobs.OrderRetentionJob

	switch cfg.Order.Store {
	case config.StoreMySQL:
		db, err := mysql.NewConnection(context.Background(), cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")

		if err := mysql.Migrate(context.Background(), db); err != nil {
			zapLogger.Fatal("migrating database", zap.Error(err))
		}
		orderRepo = repository.NewMySQLOrderRepository(db)
	default:
		memRepo := repository.NewMemoryOrderRepository()
		orderRepo = memRepo

		retentionJob = jobs.NewOrderRetentionJob(memRepo, cfg.Order.RetentionSchedule, cfg.Order.Retention, clk, zapLogger)
		if err := retentionJob.Start(); err != nil {
			zapLogger.Fatal("starting order retention job", zap.Error(err))
		}
	}
	zapLogger.Info("order store ready", zap.String("store", cfg.Order.Store))

	orders := order.NewModule(orderRepo, cat, cfg.Order, clk, zapLogger)
	catalogCtrl := catalog.NewController(cat, zapLogger.Named("catalog"))
	trackingCtrl := tracking.NewController(zapLogger.Named("tracking"))

	router := server.NewRouter(orders, catalogCtrl, trackingCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}

	if retentionJob != nil {
		retentionJob.Stop()
	}

	zapLogger.Info("server stopped gracefully")
}
