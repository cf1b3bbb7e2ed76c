// File: /services/location_service.go
package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/repositories"
	"github.com/ou8123/findshuttles-sub001/utils"
)

type LocationService struct {
	locationRepo *repositories.LocationRepository
}

func NewLocationService(locationRepo *repositories.LocationRepository) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
	}
}

// ResolvedCity is the resolver's return shape. Coordinates are deliberately
// omitted; they are set later through the city edit flow.
type ResolvedCity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ResolveLocation idempotently resolves a (city name, country name) pair to
// an existing city, creating the country and/or city when they are not yet
// known. Calling it twice with the same inputs returns the same city id and
// creates at most one country row and one city row total.
func (s *LocationService) ResolveLocation(cityName, countryName string) (*ResolvedCity, error) {
	cityName = strings.TrimSpace(cityName)
	countryName = strings.TrimSpace(countryName)

	if cityName == "" || countryName == "" {
		return nil, fmt.Errorf("city name and country name are required: %w", models.ErrValidation)
	}

	citySlug := utils.GenerateSlug(cityName)
	countrySlug := utils.GenerateSlug(countryName)
	if citySlug == "" || countrySlug == "" {
		return nil, fmt.Errorf("name must contain at least one letter or digit: %w", models.ErrValidation)
	}

	var resolved ResolvedCity
	err := s.locationRepo.Transaction(func(tx *gorm.DB) error {
		country, err := s.locationRepo.FindOrCreateCountry(tx, countryName, countrySlug)
		if err != nil {
			return err
		}

		city, err := s.locationRepo.FindOrCreateCity(tx, cityName, citySlug, country.ID)
		if err != nil {
			return err
		}

		resolved = ResolvedCity{ID: city.ID, Name: city.Name, Slug: city.Slug}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}
