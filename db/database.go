package db

import (
	"fmt"
	"log"

	"karukotha/config"
	"karukotha/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database for the configured driver, registers the
// product/category join table and migrates the schema. The returned handle
// is passed down to the services; there is no package-level connection.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Println("Database connected successfully using driver", cfg.DBDriver)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate registers the explicit join table and auto-migrates the schema.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&models.Product{}, "Categories", &models.ProductCategory{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	if err := gdb.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Review{}, &models.Settings{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}
}
