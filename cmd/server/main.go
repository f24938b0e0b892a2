package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/mvfrios/queijaria/internal/application/catalog"
	"github.com/mvfrios/queijaria/internal/application/credit"
	apppartner "github.com/mvfrios/queijaria/internal/application/partner"
	"github.com/mvfrios/queijaria/internal/application/report"
	appsales "github.com/mvfrios/queijaria/internal/application/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/advisor"
	"github.com/mvfrios/queijaria/internal/infrastructure/config"
	"github.com/mvfrios/queijaria/internal/infrastructure/logger"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
	"github.com/mvfrios/queijaria/internal/interfaces/http/handler"
	"github.com/mvfrios/queijaria/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	log.Info("Starting queijaria",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("storage", cfg.Storage.Backend),
	)

	store, err := blobstore.Open(blobstore.Config{
		Backend:    cfg.Storage.Backend,
		Dir:        cfg.Storage.Dir,
		SQLitePath: cfg.Storage.SQLitePath,
		Redis: blobstore.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	}, log)
	if err != nil {
		return fmt.Errorf("opening blob store: %w", err)
	}

	catalogStore := persistence.NewCatalogStore(store)
	historyStore := persistence.NewHistoryStore(store)
	draftStore := persistence.NewDraftStore(store)
	cartStore := persistence.NewCartStore(store)
	customerStore := persistence.NewCustomerStore(store)

	productService := appcatalog.NewProductService(catalogStore, log)
	inventoryService := appcatalog.NewInventoryService(catalogStore, log)
	checkoutService := appsales.NewCheckoutService(cartStore, historyStore, draftStore, catalogStore, inventoryService, log)
	creditService := credit.NewCreditService(historyStore, customerStore)
	customerService := apppartner.NewCustomerService(customerStore, log)
	statisticsService := report.NewStatisticsService(historyStore)
	sommelier := advisor.NewSommelier(advisor.Config{
		APIKey:  cfg.Advisor.APIKey,
		Model:   cfg.Advisor.Model,
		Timeout: cfg.Advisor.Timeout,
	}, log)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := productService.Load(startCtx); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if err := historyStore.Load(startCtx); err != nil {
		return fmt.Errorf("loading order history: %w", err)
	}
	if err := draftStore.Load(startCtx); err != nil {
		return fmt.Errorf("loading drafts: %w", err)
	}
	if err := customerService.Load(startCtx); err != nil {
		return fmt.Errorf("loading customers: %w", err)
	}
	if err := checkoutService.Load(startCtx); err != nil {
		return fmt.Errorf("restoring cart: %w", err)
	}

	engine := router.New(cfg, log, router.Handlers{
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService, creditService),
		Report:    handler.NewReportHandler(statisticsService),
		Sommelier: handler.NewSommelierHandler(sommelier),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	log.Info("Server stopped")
	return nil
}
