package logging

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger adapts a zap sugared logger to the Logger interface. It is the
// production implementation; the TUI redirects its output to a file so log
// lines do not tear the rendered screen.
type ZapLogger struct {
	l *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

// NewFileZapLogger builds a ZapLogger writing JSON lines to the given path.
// Level accepts zap's textual levels ("debug", "info", "warn", "error");
// unknown values fall back to info.
func NewFileZapLogger(path string, level string) (*ZapLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(l), nil
}

func (z *ZapLogger) Debug(_ context.Context, msg string, args ...any) {
	z.l.Debugw(msg, args...)
}

func (z *ZapLogger) Info(_ context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(_ context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(_ context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}

// Sync flushes buffered log entries. Call on shutdown.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}
