// Package logger provides the zap-backed diagnostic logger for the tint
// CLI. The logger writes to stderr and stays silent at the default level
// so styled output on stdout is never polluted.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFromEnv creates a logger whose level comes from TINT_LOG_LEVEL
// (debug, info, or error). The default is error.
func NewFromEnv() (*zap.SugaredLogger, error) {
	return New(os.Getenv("TINT_LOG_LEVEL"))
}

// New creates a logger at the named level
func New(level string) (*zap.SugaredLogger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	config.OutputPaths = []string{"stderr"}

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "", "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("TINT_LOG_LEVEL must be one of: debug, info, error; got: %s", level)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return logger.Sugar(), nil
}
