package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deckforge/engine-go/internal/config"
	"github.com/deckforge/engine-go/internal/scenario"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath   = flag.String("config", "", "path to configuration file (optional)")
	scenarioPath = flag.String("scenario", "", "path to scenario file")
	version      = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: simulate -scenario <file> [-config <file>]")
		os.Exit(2)
	}

	logger.Info("starting scenario simulation",
		zap.String("version", version),
		zap.String("scenario", *scenarioPath),
		zap.Int("queue_capacity", cfg.Engine.QueueCapacity),
		zap.Int("max_cascade_depth", cfg.Engine.MaxCascadeDepth),
	)

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		logger.Fatal("failed to load scenario", zap.Error(err))
	}

	runner := scenario.NewRunner(logger).WithManager(cfg.Engine.NewEventManager())
	report, err := runner.Run(sc)
	if err != nil {
		logger.Fatal("scenario run failed", zap.Error(err))
	}

	logger.Info("scenario complete",
		zap.String("scenario", report.Scenario),
		zap.Int("steps", len(report.Steps)),
		zap.Int("errors", report.ErrorCount()),
		zap.String("checksum", report.Checksum),
	)

	fmt.Print(report.Summary())

	if report.ErrorCount() > 0 {
		os.Exit(1)
	}
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
