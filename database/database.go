// File: /database/database.go
package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ou8123/findshuttles-sub001/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique-key and FK violations must come back as gorm sentinel
		// errors, not driver-specific ones.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.City{},
		&models.Route{},
		&models.Amenity{},
		&models.Hotel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Valid-destinations lookups and route pages filter on these constantly.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_routes_departure_city ON routes(departure_city_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for routes departure city: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_routes_destination_city ON routes(destination_city_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for routes destination city: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_routes_departure_country ON routes(departure_country_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for routes departure country: %v\n", err)
	}

	return nil
}

// SeedAdmin makes sure one admin login exists so the back office is
// reachable on a fresh database. No-op when any admin is already present
// or when no seed password is configured.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if password == "" {
		return nil
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:             uuid.New().String(),
		Email:          email,
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	fmt.Printf("Seeded admin user %s\n", email)
	return nil
}
