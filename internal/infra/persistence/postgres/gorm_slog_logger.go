package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"containerview/config"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm output to slog. Bound parameters are never logged: they
// include password hashes, TOTP secrets and live verification codes.
type gormSlogLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{base: base, level: level, slow: slowQueryThreshold}
}

// ParamsFilter makes gorm hand Trace the placeholder SQL instead of interpolated values.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < threshold {
		return
	}
	l.emit(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	query := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRows()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.emit(ctx, slog.LevelError, "GORM query failed", query(slog.String("error", err.Error()))...)
	case elapsed > l.slow && l.level >= logger.Warn:
		l.emit(ctx, slog.LevelWarn, "GORM slow query", query(slog.Duration("slowThreshold", l.slow))...)
	case l.level >= logger.Info:
		l.emit(ctx, slog.LevelInfo, "GORM query", query()...)
	}
}

// emit prefers the request-scoped logger so SQL lines carry the request ID.
func (l *gormSlogLogger) emit(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	deliverycontext.GetLoggerOrDefault(ctx, l.base).LogAttrs(ctx, level, msg, attrs...)
}
