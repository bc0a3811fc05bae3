package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSQLSlowThreshold = 200 * time.Millisecond

// sqlTablePattern picks the first table a statement touches.
var sqlTablePattern = regexp.MustCompile(`(?i)\b(?:FROM|INTO|UPDATE)\s+"?([a-z_][a-z0-9_]*)"?`)

// sqlLogger routes GORM output through the request logger when one is in
// ctx, so statements carry request_id and author_id.
type sqlLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger logs failed and slow statements; every statement when env.debug is on.
func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &sqlLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultSQLSlowThreshold,
	}
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *sqlLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	if log := l.log(ctx); log != nil {
		log.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

// Trace logs one finished statement. Missing rows and unique violations are
// answered as 404 and 409 by the repositories, so they are not failures here.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	log := l.log(ctx)
	if log == nil {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	stmt, rows := sqlAndRowsFn()
	attrs := append(statementAttrs(stmt), slog.Int64("rows", rows), slog.Duration("elapsed", elapsed))
	log.LogAttrs(ctx, level, msg, append(attrs, extra...)...)
}

func (l *sqlLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil && isUniqueConstraintViolation(err):
		if l.level < logger.Info {
			return 0, "", nil, false
		}

		return slog.LevelInfo, "Statement hit unique constraint", nil, true
	case err != nil:
		if l.level < logger.Error {
			return 0, "", nil, false
		}

		return slog.LevelError, "Statement failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "Slow statement", []slog.Attr{slog.Duration("slowThreshold", l.slowThreshold)}, true
	case l.level >= logger.Info:
		return slog.LevelInfo, "Statement", nil, true
	}

	return 0, "", nil, false
}

// statementAttrs tags a statement with its verb and first table.
func statementAttrs(stmt string) []slog.Attr {
	op, _, _ := strings.Cut(strings.TrimSpace(stmt), " ")
	attrs := []slog.Attr{slog.String("op", strings.ToUpper(op))}
	if m := sqlTablePattern.FindStringSubmatch(stmt); m != nil {
		attrs = append(attrs, slog.String("table", m[1]))
	}

	return append(attrs, slog.String("sql", stmt))
}
