package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

// Logger wraps zap with context-aware helpers.
type Logger struct {
	zap *zap.Logger
}

var (
	global   = &Logger{zap: zap.NewNop()}
	globalMu sync.RWMutex
)

// Init replaces the package logger. level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	globalMu.Lock()
	global = &Logger{zap: z}
	globalMu.Unlock()

	return nil
}

// L returns the package logger.
func L() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// With returns a child logger carrying fields on every entry.
func With(fields ...Field) *Logger {
	return &Logger{zap: L().zap.With(fields...)}
}

// WithContextFields stores fields in ctx; they are appended to every entry logged with it.
func WithContextFields(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func Sync() error { return L().zap.Sync() }

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zap.Debug(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zap.Info(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zap.Warn(msg, withCtx(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zap.Error(msg, withCtx(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func withCtx(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	extra, ok := ctx.Value(ctxFieldsKey{}).([]Field)
	if !ok || len(extra) == 0 {
		return fields
	}
	return append(extra[:len(extra):len(extra)], fields...)
}

// NoopLogger discards everything. Used by test containers.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
