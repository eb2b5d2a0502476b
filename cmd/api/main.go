// Package main provides the entry point for the detection API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/glossa-dev/glossa/internal/config"
	"github.com/glossa-dev/glossa/internal/handlers"
	"github.com/glossa-dev/glossa/internal/middleware"
	"github.com/glossa-dev/glossa/internal/storage"
	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
	"github.com/glossa-dev/glossa/pkg/metrics"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	m := metrics.NewMetrics()

	det, err := buildDetector(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build detector", zap.Error(err))
	}

	cache := storage.NewNopCache()
	if cfg.Redis.Enabled {
		cache, err = storage.NewRedisCache(cfg.Redis, cfg.Detector.CacheTTL, logger)
		if err != nil {
			logger.Fatal("Failed to connect result cache", zap.Error(err))
		}
	}
	defer cache.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RateLimit(cfg.RateLimit))

	h := handlers.New(det, cache, m, cfg.Detector.MaxTextBytes, logger)
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	h.SetupRoutes(router.Group("/v1"))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting API server",
			zap.Int("port", cfg.Server.Port),
			zap.Int("languages", len(det.Languages())),
			zap.Float64("minimum_relative_distance", det.MinimumRelativeDistance()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// buildDetector assembles a detector from the configured language subset.
func buildDetector(cfg *config.Config, logger *zap.Logger) (*detector.Detector, error) {
	languages := language.AllLanguages()
	if len(cfg.Detector.Languages) > 0 {
		languages = languages[:0]
		for _, code := range cfg.Detector.Languages {
			lang, ok := language.FromIsoCode639_1(code)
			if !ok {
				return nil, fmt.Errorf("unsupported language code %q", code)
			}
			languages = append(languages, lang)
		}
	}
	return detector.NewBuilder().
		FromLanguages(languages...).
		WithMinimumRelativeDistance(cfg.Detector.MinimumRelativeDistance).
		WithLogger(logger).
		Build()
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
