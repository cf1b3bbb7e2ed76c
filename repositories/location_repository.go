// File: /repositories/location_repository.go
package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/models"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Transaction runs fn inside one database transaction. The resolver's
// country+city upsert pair goes through here so a failure between the two
// steps cannot leave an orphan country behind.
func (r *LocationRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// FindOrCreateCountry resolves a country by slug, creating it when absent.
// An existing country is reused unchanged. A concurrent insert of the same
// slug surfaces as a retryable conflict.
func (r *LocationRepository) FindOrCreateCountry(tx *gorm.DB, name, slug string) (*models.Country, error) {
	var country models.Country
	err := tx.Where("slug = ?", slug).First(&country).Error
	if err == nil {
		return &country, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	country = models.Country{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug,
	}
	if err := tx.Create(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("country %q was created concurrently, retry: %w", name, models.ErrConflict)
		}
		return nil, err
	}
	return &country, nil
}

// FindOrCreateCity resolves a city by its (name, country) identity,
// creating it without coordinates when absent. An existing city is reused
// as-is; coordinates are only ever set through the city edit flow.
func (r *LocationRepository) FindOrCreateCity(tx *gorm.DB, name, slug, countryID string) (*models.City, error) {
	var city models.City
	err := tx.Where("name = ? AND country_id = ?", name, countryID).First(&city).Error
	if err == nil {
		return &city, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	city = models.City{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		CountryID: countryID,
	}
	if err := tx.Create(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("city %q was created concurrently, retry: %w", name, models.ErrConflict)
		}
		return nil, err
	}
	return &city, nil
}
