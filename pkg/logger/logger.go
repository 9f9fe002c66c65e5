// Package logger wraps zap behind the minimal interface the services use.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

func New(levelStr, format string) Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, _ := cfg.Build()
	return &zapWrapper{l: l}
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() Logger {
	return &zapWrapper{l: zap.NewNop()}
}

type zapWrapper struct {
	l *zap.Logger
}

func (z *zapWrapper) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapWrapper) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *zapWrapper) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapWrapper) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }

func (z *zapWrapper) With(fields ...zap.Field) Logger {
	return &zapWrapper{l: z.l.With(fields...)}
}
