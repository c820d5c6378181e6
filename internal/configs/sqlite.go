package config

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// NewDatabaseClient opens the SQLite database. TranslateError makes gorm
// report constraint violations as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func NewDatabaseClient(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperrors.DBError(apperrors.KindDBConnection, "", err)
	}

	// Every connection to an in-memory database gets its own empty database.
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, apperrors.DBError(apperrors.KindDBConnection, "", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}, &model.TimelineEvent{}); err != nil {
		return apperrors.DBError(apperrors.KindDBMigration, "", err)
	}
	return nil
}
