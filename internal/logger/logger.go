package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // The package intentionally maintains a single shared logger instance.
var (
	// globalLevel controls the level of the shared logger at runtime.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// globalLogger is the shared sugared logger instance.
	globalLogger = New(globalLevel)
	// globalMutex protects replacement of the shared logger.
	globalMutex sync.RWMutex
)

// New creates a sugared Zap logger writing to stderr with the given level enabler.
// If level is nil, the package-wide atomic level is used.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, options...).Sugar()
}

// Logger returns the shared logger instance.
func Logger() *zap.SugaredLogger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the shared logger instance.
func SetLogger(l *zap.SugaredLogger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = l
}

// Level returns the current level of the shared logger.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the level of the shared logger.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether the shared logger emits debug messages.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel parses a textual log level (case-insensitive, surrounding spaces ignored).
// It returns the parsed level and true on success, or InfoLevel and false otherwise.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	level = strings.ToLower(strings.TrimSpace(level))

	// zapcore.ParseLevel maps the empty string to InfoLevel without an error,
	// but an empty level is a configuration mistake, not a choice.
	if level == "" {
		return zapcore.InfoLevel, false
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// fromContext returns the logger associated with the context.
// The context is accepted on every logging call so request-scoped loggers
// can be introduced later without touching call sites.
func fromContext(_ context.Context) *zap.SugaredLogger {
	return Logger()
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...any) {
	fromContext(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message at debug level with key-value pairs.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...any) {
	fromContext(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message at info level with key-value pairs.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...any) {
	fromContext(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message at warn level with key-value pairs.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...any) {
	fromContext(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message at error level with key-value pairs.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and exits the process.
func Fatal(ctx context.Context, args ...any) {
	fromContext(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Fatalf(format, args...)
}

// FatalKV logs a message at fatal level with key-value pairs and exits the process.
func FatalKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Fatalw(message, kvs...)
}
