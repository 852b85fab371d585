package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the application
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZapLogger implements Logger on top of a zap SugaredLogger
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a new Logger instance
func NewLogger() Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails on a broken config; fall back to the no-op logger
		return &ZapLogger{sugar: zap.NewNop().Sugar()}
	}

	return &ZapLogger{sugar: log.Sugar()}
}

// NewDevelopmentLogger creates a Logger with human-readable output and debug enabled
func NewDevelopmentLogger() Logger {
	log, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		return &ZapLogger{sugar: zap.NewNop().Sugar()}
	}
	return &ZapLogger{sugar: log.Sugar()}
}

// Info logs an informational message
func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
