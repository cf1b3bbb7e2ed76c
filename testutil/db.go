// Package testutil provides shared helpers for tests. Tests run against an
// in-memory SQLite database migrated to the same schema the MySQL
// deployment uses, so constraint behavior (unique keys, compound indexes)
// is exercised for real.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ou8123/findshuttles-sub001/models"
)

// NewDB opens a fresh in-memory database, migrates all models and returns
// the handle. Each test gets its own database, named after the test so
// parallel tests never share state.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.City{},
		&models.Route{},
		&models.Amenity{},
		&models.Hotel{},
	)
	if err != nil {
		t.Fatalf("testutil.NewDB: migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
