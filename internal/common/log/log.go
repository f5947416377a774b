// Package log is the structured logger used across the client core.
// It keeps a context-first call shape so correlation data travels with every line.
package log

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Bool     = zap.Bool
	Any      = zap.Any
	Duration = zap.Duration
	Time     = zap.Time
	Strings  = zap.Strings
	Err      = zap.Error
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type options struct {
	level  Level
	env    string
	caller bool
	skip   int
	output string
}

type Option func(*options)

func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

func WithEnv(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.skip = skip }
}

// WithOutput sets the log destination: "stdout", "stderr" or a file path.
func WithOutput(output string) Option {
	return func(o *options) { o.output = output }
}

// ParseLevel maps a config string to a level, falling back to info.
func ParseLevel(s string) Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return lvl
}

// Init replaces the process logger.
func Init(appName string, opts ...Option) error {
	o := &options{level: InfoLevel, output: "stdout", skip: 1}
	for _, opt := range opts {
		opt(o)
	}

	cfg := zap.NewProductionConfig()
	if o.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	cfg.OutputPaths = []string{o.output}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{"app": appName}

	l, err := cfg.Build(zap.WithCaller(o.caller), zap.AddCallerSkip(o.skip))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Store(l)
	return nil
}

// InitForTest routes logs to a development logger on stderr at debug level.
func InitForTest() {
	l, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// SetLogger replaces the process logger, nil means discard.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger exposes the underlying zap logger for integrations that need it.
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if id := CorrelationID(ctx); id != "" {
		fields = append(fields, String("correlationId", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logger.Load().Error(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
	Sync()
	os.Exit(1)
}
