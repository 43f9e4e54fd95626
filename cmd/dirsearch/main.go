package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/config"
	"github.com/kailas-cloud/dirsearch/internal/db"
	"github.com/kailas-cloud/dirsearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/dirsearch/internal/db/redis"
	logpkg "github.com/kailas-cloud/dirsearch/internal/logger"
	"github.com/kailas-cloud/dirsearch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
	favoritesrepo "github.com/kailas-cloud/dirsearch/internal/repository/favorites"
	chiTransport "github.com/kailas-cloud/dirsearch/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/dirsearch/internal/usecase/catalog"
	favoritesuc "github.com/kailas-cloud/dirsearch/internal/usecase/favorites"
	healthuc "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
	"github.com/kailas-cloud/dirsearch/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dirsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("catalog_dir", cfg.Catalogs.Dir),
	)

	store, err := newStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Catalogs are validated at startup; a bad catalog file stops the process.
	catRepo := catalogrepo.New(catalogrepo.Options{
		Dir:      cfg.Catalogs.Dir,
		Embedded: cfg.Catalogs.EmbeddedEnabled(),
	}, logger)
	if err := catRepo.Load(); err != nil {
		logger.Fatal("Failed to load catalogs", zap.Error(err))
	}
	cats, _ := catRepo.List(ctx)
	logger.Info("Catalogs loaded", zap.Int("count", len(cats)))

	engineMetrics := metrics.NewEngine(prometheus.DefaultRegisterer)
	httpMetrics := metrics.NewHTTP(prometheus.DefaultRegisterer)

	favRepo := favoritesrepo.New(store, time.Duration(cfg.Favorites.TTLHours)*time.Hour)

	catalogSvc := cataloguc.New(catRepo)
	searchSvc := searchuc.New(catRepo).WithRecorder(engineMetrics)
	favoritesSvc := favoritesuc.New(favRepo, catRepo, cfg.Favorites.MaxItems).WithRecorder(engineMetrics)

	// The memory driver has no remote dependency to ping.
	var pinger healthuc.DBPinger
	if cfg.Database.Driver != config.DriverMemory {
		pinger = store
	}
	healthSvc := healthuc.New(catalogSvc, pinger)

	server := chiTransport.NewServer(catalogSvc, searchSvc, favoritesSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(httpMetrics.Middleware)
	chiTransport.Handler(server, chiTransport.ServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: paramErrorHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the favorites store for the configured driver.
// Valkey and Redis share the rueidis implementation.
func newStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewStore(), nil
	case config.DriverValkey, config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func paramErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
		Code:    chiTransport.ErrorCodeBadRequest,
		Message: err.Error(),
	})
}
