// Package logger provides a global, Sugared Zap logger. It emits JSON logs to
// stdout (and optionally to a rotating file), and lets callers attach
// key/value context to a context.Context so that every log line written with
// that context carries the same fields, including the active trace and span
// IDs when OpenTelemetry tracing is in use.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ctxKeyType is the unexported type for the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey is the context key under which Derive stores a logger.
	ctxKey = ctxKeyType{}
)

// config holds optional configuration for the logger.
type config struct {
	filePath   string // optional path of a rotating log file
	maxSizeMB  int    // rotate after this many megabytes
	maxBackups int    // number of rotated files to keep
}

// Option configures the logger before initialization.
type Option func(*config)

// WithFile tees every log entry to a size-rotated file at path.
func WithFile(path string) Option {
	return func(c *config) {
		c.filePath = path
	}
}

// WithRotation sets the rotation size (in megabytes) and the number of old
// files kept when WithFile is used.
//
// Default: 100 MB, 3 backups.
func WithRotation(maxSizeMB, maxBackups int) Option {
	return func(c *config) {
		c.maxSizeMB = maxSizeMB
		c.maxBackups = maxBackups
	}
}

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Calling Init multiple times has no
// effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string, opts ...Option) error {
	cfg := config{
		maxSizeMB:  100,
		maxBackups: 3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

		cores := []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl),
		}

		if cfg.filePath != "" {
			rotating := &lumberjack.Logger{
				Filename:   cfg.filePath,
				MaxSize:    cfg.maxSizeMB,
				MaxBackups: cfg.maxBackups,
			}
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotating), lvl))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) with
// the given key/values and the current trace context attached.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = baseLogger
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger carries the given key/values.
// Every subsequent log call made with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
