package infra

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"factcheck/internal/models/db_models"
)

// InitPostgresql opens the gorm handle for dsn. DSNs starting with "file:"
// are opened with the SQLite driver and migrated in place; Postgres schemas
// are owned by cmd/migrate.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)}

	if strings.HasPrefix(dsn, "file:") {
		db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&db_models.Feedback{}, &db_models.AnalysisRequest{}, &db_models.AnalysisResult{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	} else {
		log.Info().Msg("Database connection closed successfully")
	}
}
