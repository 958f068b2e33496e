// Nijouzu API server.
//
//	@title			Nijouzu API
//	@version		0.1.0
//	@description	Japanese Learning API
//	@BasePath		/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nijouzu/nijouzu-api/internal/config"
	"github.com/nijouzu/nijouzu-api/pkg/adapters/metrics/prometheus"
	"github.com/nijouzu/nijouzu-api/pkg/api/http"
)

var (
	// Set by build flags
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting Nijouzu API",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("commit", Commit),
		zap.String("build_time", BuildTime))

	var metricsCollector *prometheus.Collector
	if cfg.MetricsEnabled {
		metricsCollector = prometheus.NewCollector(nil)
	}

	httpServer := http.NewServer(&http.Config{
		App:     cfg,
		Metrics: metricsCollector,
		Logger:  logger,
	})

	// Bind before reporting readiness so a taken port fails here
	if err := httpServer.Listen(); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("Nijouzu API started",
		zap.String("http_addr", httpServer.Addr()),
		zap.Strings("cors_allow_origins", cfg.CORS.AllowOrigins),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
		zap.Bool("docs_enabled", cfg.DocsEnabled))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("Nijouzu API shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
