package database

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/model"
)

// Migrate brings the schema up to date for all models the service owns
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(&model.Computation{}); err != nil {
		logger.Error("Failed to migrate computations table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
