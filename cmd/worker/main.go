// Package main provides the entry point for the NATS detection worker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/glossa-dev/glossa/internal/config"
	"github.com/glossa-dev/glossa/internal/queue"
	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	det, err := buildDetector(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build detector", zap.Error(err))
	}

	consumer, err := queue.NewConsumer(cfg.NATS.URL, cfg.NATS.Subject, det, logger)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("Consumer failed", zap.Error(err))
	}
	logger.Info("Worker exited gracefully")
}

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
