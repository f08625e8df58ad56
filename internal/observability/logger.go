package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	maxLoggerFieldCapacity int = 5 // Maximum number of context fields to add to logger
)

// Global logger instance - shared across the application.
// This is intentional: loggers should not be stored in context.
//
//nolint:gochecknoglobals // Singleton logger is a standard pattern
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

// InitLogger initializes the base logger (called once at startup).
// When a log file is configured, lines are appended to it in addition to stderr.
func InitLogger(cfg *LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()

	if cfg != nil {
		if cfg.File != "" {
			zapCfg.OutputPaths = append(zapCfg.OutputPaths, cfg.File)
			zapCfg.ErrorOutputPaths = append(zapCfg.ErrorOutputPaths, cfg.File)
		}

		if cfg.Level != "" {
			level, err := zap.ParseAtomicLevel(cfg.Level)
			if err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
			}
			zapCfg.Level = level
		}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger)

	return logger, nil
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(logger *zap.Logger) {
	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()
}

// getBaseLogger returns the global logger instance.
func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger == nil {
		// Fallback to production logger if not initialized
		logger, _ = zap.NewProduction()
	}

	return logger
}

// FromContext creates a logger with fields extracted from context.
func FromContext(ctx context.Context) *zap.Logger {
	logger := getBaseLogger()

	fields := make([]zap.Field, 0, maxLoggerFieldCapacity)

	if invocationID := GetInvocationID(ctx); invocationID != "" {
		fields = append(fields, zap.String("invocation_id", invocationID))
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if platform := GetPlatform(ctx); platform != "" {
		fields = append(fields, zap.String("platform", platform))
	}

	if command := GetCommand(ctx); command != "" {
		fields = append(fields, zap.String("command", command))
	}

	if author := GetAuthor(ctx); author != "" {
		fields = append(fields, zap.String("author", author))
	}

	return logger.With(fields...)
}
