package infra

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"thaigeo/internal/models/db_models"
)

var ErrPostgresNotConfigured = errors.New("POSTGRES_URL is not set")

func InitPostgresql(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrPostgresNotConfigured
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// the dataset is not guaranteed to be referentially complete
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logger.Error("Error connecting to database", zap.Error(err))
		return nil, err
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("Error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed successfully")
	}
}

// AutoMigrate creates or updates the three dataset tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.Province{}, &db_models.District{}, &db_models.SubDistrict{})
}

func StartTransaction(db *gorm.DB, logger *zap.Logger) (*gorm.DB, error) {
	tx := db.Begin()
	if tx.Error != nil {
		logger.Error("Error starting transaction", zap.Error(tx.Error))
		return nil, tx.Error
	}
	return tx, nil
}

// ReleaseTransaction rolls back when err is non-nil and commits otherwise.
// It returns the commit error, if any.
func ReleaseTransaction(tx *gorm.DB, err error, logger *zap.Logger) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			logger.Error("Error rollback transaction", zap.Error(rollbackErr), zap.NamedError("cause", err))
		}
		return nil
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		logger.Error("Error committing transaction", zap.Error(commitErr))
		return commitErr
	}
	logger.Debug("Transaction committed successfully")
	return nil
}

// TruncateTables empties tables inside tx.
func TruncateTables(tx *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(tables))
	for _, t := range tables {
		quoted = append(quoted, pq.QuoteIdentifier(t))
	}
	return tx.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ")).Error
}
