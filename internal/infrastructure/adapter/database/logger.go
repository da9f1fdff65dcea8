package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// DatabaseLogger is a GORM logger that forwards to the core logger port
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = gormlogger.Silent
	case "error":
		logLevel = gormlogger.Error
	case "warn":
		logLevel = gormlogger.Warn
	default:
		logLevel = gormlogger.Info
	}

	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs informational database messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), map[string]any{"source": "gorm"})
	}
}

// Warn logs database warnings
func (l *DatabaseLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), map[string]any{"source": "gorm"})
	}
}

// Error logs database errors
func (l *DatabaseLogger) Error(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), map[string]any{"source": "gorm"})
	}
}

// Trace logs executed SQL with timing, flagging slow queries
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"source":     "gorm",
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= gormlogger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("Query failed", fields)
	case elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		l.coreLogger.Warn("Slow query", fields)
	case l.logLevel >= gormlogger.Info:
		l.coreLogger.Debug("Query executed", fields)
	}
}
