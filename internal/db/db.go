package db

import (
	"community/internal/config"
	"community/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the three tables. The returned
// handle is passed down explicitly; nothing in this package keeps state.
func Open(cfg config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.PostLike{},
	); err != nil {
		return nil, err
	}

	return gdb, nil
}
