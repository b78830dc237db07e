package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskdeck/internal/models"
)

// OpenSQLite opens (and migrates) a SQLite database for the GORM-backed
// stores. The default DSN is ":memory:", which keeps state process-local
// exactly like the memory backend.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&models.Task{}, &models.Category{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// SeedDB loads the shared fixture into an empty database.
func SeedDB(db *gorm.DB, tasks []models.Task, categories []models.Category) error {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if len(categories) > 0 {
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
	}
	if len(tasks) > 0 {
		if err := db.Create(&tasks).Error; err != nil {
			return err
		}
	}
	return nil
}
