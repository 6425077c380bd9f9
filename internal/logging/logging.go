package logging

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap-backed logr.Logger. The serviceBuild value is attached to every entry
// when buildVersion is set.
func New(debug bool, buildVersion string) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}

	logger := zapr.NewLogger(zl)
	if buildVersion != "" {
		logger = logger.WithValues("serviceBuild", buildVersion)
	}
	return logger, nil
}

// Transposition describes one completed sheet transposition.
type Transposition struct {
	Source     string
	Target     string
	InputRunes int
	Warnings   int
	Duration   time.Duration
}

// Logger records transposition events.
type Logger struct {
	logFn func(ctx context.Context, msg string, args ...any)
}

// NewLogger writes events to the logr.Logger carried by the context.
func NewLogger() *Logger {
	return &Logger{
		logFn: func(ctx context.Context, msg string, args ...any) {
			logr.FromContextOrDiscard(ctx).V(0).Info(msg, args...)
		},
	}
}

// WithLogFn returns a copy of the logger that writes with fn.
func (l *Logger) WithLogFn(fn func(ctx context.Context, msg string, args ...any)) *Logger {
	return &Logger{logFn: fn}
}

func (l *Logger) Log(ctx context.Context, msg string, field ...any) {
	enrichedFields := []any{"timestamp", time.Now()}
	enrichedFields = append(enrichedFields, field...)
	l.logFn(ctx, msg, enrichedFields...)
}

// LogTransposition logs a completed transposition with its summary fields.
func (l *Logger) LogTransposition(ctx context.Context, t Transposition) {
	l.Log(ctx, "transposed sheet",
		"sourceKey", t.Source,
		"targetKey", t.Target,
		"inputRunes", t.InputRunes,
		"warnings", t.Warnings,
		"latency", t.Duration.Milliseconds(),
	)
}
