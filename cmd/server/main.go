package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/httpapi"
	"github.com/vastra/commerce-core/internal/session"
	"github.com/vastra/commerce-core/internal/sizing"
)

type Config struct {
	HTTPPort        string
	CatalogBackend  string // "memory" or "sqlite"
	CatalogDBPath   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CatalogBackend:  getEnv("CATALOG_BACKEND", "memory"),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", ":memory:"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, err := newCatalogStore(cfg)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	defer store.Close()

	reg := session.NewRegistry(store, sizing.NewAdvisor(), logger)
	router := httpapi.NewRouter(reg, logger, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("commerce core starting",
			zap.String("port", cfg.HTTPPort),
			zap.String("catalog_backend", cfg.CatalogBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newCatalogStore(cfg *Config) (catalog.Store, error) {
	switch cfg.CatalogBackend {
	case "sqlite":
		return catalog.NewSQLiteStore(cfg.CatalogDBPath)
	default:
		return catalog.NewMemoryStore(catalog.Seed()...), nil
	}
}
