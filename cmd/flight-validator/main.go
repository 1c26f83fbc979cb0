package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/flight-validator/internal/application/service"
	"github.com/ozzus/flight-validator/internal/application/validator"
	"github.com/ozzus/flight-validator/internal/config"
	"github.com/ozzus/flight-validator/internal/domain/ports"
	"github.com/ozzus/flight-validator/internal/infrastructures/fixtures"
	"github.com/ozzus/flight-validator/internal/infrastructures/metrics"
	"github.com/ozzus/flight-validator/internal/infrastructures/report"
	"github.com/ozzus/flight-validator/internal/infrastructures/tracing"
	"github.com/ozzus/flight-validator/internal/infrastructures/yamlsource"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.InitTracer(cfg.Tracing.Enabled, cfg.Tracing.ServiceName, os.Stderr)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	now, err := cfg.ReferenceTime(time.Now())
	if err != nil {
		log.Fatal("invalid reference time", zap.Error(err))
	}

	groundTime, err := validator.ParseGroundTimeMode(cfg.Validator.GroundTimeMode)
	if err != nil {
		log.Fatal("invalid validator config", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	log.Info("flight-validator starting",
		zap.String("env", cfg.Env),
		zap.String("source", cfg.Source.Kind),
		zap.String("ground_time_mode", cfg.Validator.GroundTimeMode),
		zap.Time("now", now),
	)

	svc := service.NewValidationService(
		log,
		validator.New(groundTime),
		newSource(cfg, now),
		report.NewConsoleSink(os.Stdout, cfg.Report.Color),
		collector,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := svc.Validate(ctx, now); err != nil {
		log.Error("validation failed", zap.Error(err))
		return
	}

	if path := strings.TrimSpace(cfg.Metrics.Textfile); path != "" {
		if err := collector.WriteTextfile(path); err != nil {
			log.Warn("failed to write metrics textfile", zap.Error(err), zap.String("path", path))
		}
	}
}

func newSource(cfg *config.Config, now time.Time) ports.FlightSource {
	if strings.EqualFold(strings.TrimSpace(cfg.Source.Kind), config.SourceYAML) {
		return yamlsource.NewSource(cfg.Source.Path)
	}
	return fixtures.NewSource(now)
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
