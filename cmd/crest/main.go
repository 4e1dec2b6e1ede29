package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crestlabs/crest/internal/application/evaluation"
	"github.com/crestlabs/crest/internal/application/registry"
	"github.com/crestlabs/crest/internal/config"
	"github.com/crestlabs/crest/pkg/adapters/artifacts/file"
	"github.com/crestlabs/crest/pkg/adapters/metrics/prometheus"
	"github.com/crestlabs/crest/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

const knnDescription = "KNN predicts the output based on nearest neighbors in the training data."

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting concrete strength prediction service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Load artifacts. Any failure here is fatal: the process must not
	// begin serving without a model, scaler, and evaluation dataset.
	store := file.NewStore(cfg.ArtifactsDir, logger)

	model, err := store.Model()
	if err != nil {
		logger.Fatal("failed to load model artifact", zap.Error(err))
	}

	scaler, err := store.Scaler()
	if err != nil {
		logger.Fatal("failed to load scaler artifact", zap.Error(err))
	}

	dataset, err := store.EvalDataset()
	if err != nil {
		logger.Fatal("failed to load evaluation dataset", zap.Error(err))
	}

	// Precompute the metrics snapshot before accepting any request
	snapshot, err := evaluation.Evaluate(model, dataset)
	if err != nil {
		logger.Fatal("failed to evaluate model", zap.Error(err))
	}
	logger.Info("evaluated model on held-out test set",
		zap.Int("rows", dataset.Len()),
		zap.Float64("mae", snapshot.MAE),
		zap.Float64("rmse", snapshot.RMSE),
		zap.Float64("r2", snapshot.R2),
		zap.Float64("correlation", snapshot.Correlation))

	metricsCollector := prometheus.NewCollector()
	metricsCollector.SetEvalMetrics(http.DefaultModel, snapshot)

	// Build the model registry with the single supported model
	modelRegistry := registry.NewRegistry(logger)
	if err := modelRegistry.Register(registry.Entry{
		Name:        http.DefaultModel,
		Model:       model,
		Scaler:      scaler,
		Snapshot:    snapshot,
		Description: knnDescription,
	}); err != nil {
		logger.Fatal("failed to register model", zap.Error(err))
	}

	// Initialize HTTP server
	httpServer := http.NewServer(&http.Config{
		Port:           cfg.HTTPPort,
		Registry:       modelRegistry,
		Metrics:        metricsCollector,
		AllowedOrigins: cfg.FrontendURLs,
		Logger:         logger,
	})

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("concrete strength prediction service started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.Strings("allowed_origins", cfg.FrontendURLs),
		zap.Strings("models", modelRegistry.Names()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("concrete strength prediction service shut down complete")
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
