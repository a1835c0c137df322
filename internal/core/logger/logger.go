package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "sweettracker-gateway"

var globalLogger *zap.Logger

// Init initializes the global logger.
// "production" produces JSON logs; any other environment produces colored console logs.
// An unparsable level keeps the environment's default level.
func Init(environment string, level string) error {
	config := newConfig(environment)

	if l, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}

	globalLogger = logger.With(zap.String("service", serviceName))
	return nil
}

func newConfig(environment string) zap.Config {
	if environment == "production" {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}

// Get returns the global logger instance.
// If not initialized, it returns a no-op logger.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Set replaces the global logger. A nil logger restores the no-op fallback.
func Set(l *zap.Logger) {
	globalLogger = l
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
