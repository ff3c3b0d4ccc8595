package services

import (
	"testing"

	"karukotha/db"
	"karukotha/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database. Max one open connection so
// every query sees the same sqlite memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: name}
	require.NoError(t, gdb.Create(&category).Error)
	return category
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func idsPtr(v []uint) *[]uint     { return &v }
