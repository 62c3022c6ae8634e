// Package log is the process logger. It keeps a single zap logger behind package-level
// functions so call sites read xlog.Info(ctx, "[TAG] message", fields...).
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

const (
	LogToConsole = "console"
	LogToJSON    = "json"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type options struct {
	logTo      string
	env        string
	caller     bool
	callerSkip int
	level      zapcore.Level
	stderr     bool
}

type Option func(*options)

func WithLogToOption(logTo string) Option {
	return func(o *options) { o.logTo = logTo }
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

func WarnLogLevel() Option {
	return func(o *options) { o.level = zapcore.WarnLevel }
}

// WithStderr sends log lines to stderr, leaving stdout to command output.
func WithStderr() Option {
	return func(o *options) { o.stderr = true }
}

// Init replaces the process logger.
func Init(name string, opts ...Option) {
	o := options{logTo: LogToJSON, level: zapcore.InfoLevel, callerSkip: 1}
	for _, opt := range opts {
		opt(&o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.logTo == LogToConsole || o.env == "local" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	out := os.Stdout
	if o.stderr {
		out = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.Lock(out), zap.NewAtomicLevelAt(o.level))
	zopts := []zap.Option{zap.AddCallerSkip(o.callerSkip)}
	if o.caller {
		zopts = append(zopts, zap.AddCaller())
	}

	l := zap.New(core, zopts...).Named(name)
	if o.env != "" {
		l = l.With(zap.String("env", o.env))
	}
	logger.Store(l)
}

// InitForTest installs a logger that discards everything.
func InitForTest() {
	logger.Store(zap.NewNop())
}

// SetLogger swaps the process logger, mostly for tests that observe log output.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

func Sync() {
	_ = logger.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String(correlationIDField, id))
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

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Load().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}
