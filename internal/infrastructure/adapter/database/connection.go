package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// Connection bundles the gorm handle for the history database with the
// configuration it was opened from
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection opens the postgres database that stores computation
// history, applies the pool settings from config and verifies the
// connection with a bounded ping before handing it out.
func NewConnection(config *Config, appLogger coreport.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(appLogger, config.LogLevel),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	appLogger.Info("Connected to history database", map[string]any{
		"host":           config.Host,
		"database":       config.Database,
		"max_open_conns": config.MaxOpenConns,
	})

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// Close releases the underlying connection pool
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
