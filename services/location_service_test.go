// File: /services/location_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/repositories"
	"github.com/ou8123/findshuttles-sub001/services"
	"github.com/ou8123/findshuttles-sub001/testutil"
)

func TestResolveLocation_CreatesCountryAndCity(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewLocationService(repositories.NewLocationRepository(db))

	city, err := svc.ResolveLocation("Tamarindo", "Costa Rica")
	require.NoError(t, err)

	assert.NotEmpty(t, city.ID)
	assert.Equal(t, "Tamarindo", city.Name)
	assert.Equal(t, "tamarindo", city.Slug)

	var stored models.City
	require.NoError(t, db.First(&stored, "id = ?", city.ID).Error)
	assert.Nil(t, stored.Latitude, "coordinates are set through the edit flow, not the resolver")
	assert.Nil(t, stored.Longitude)

	var country models.Country
	require.NoError(t, db.First(&country, "id = ?", stored.CountryID).Error)
	assert.Equal(t, "Costa Rica", country.Name)
	assert.Equal(t, "costa-rica", country.Slug)
}

func TestResolveLocation_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewLocationService(repositories.NewLocationRepository(db))

	first, err := svc.ResolveLocation("Tamarindo", "Costa Rica")
	require.NoError(t, err)

	second, err := svc.ResolveLocation("Tamarindo", "Costa Rica")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var countryCount, cityCount int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countryCount).Error)
	require.NoError(t, db.Model(&models.City{}).Count(&cityCount).Error)
	assert.EqualValues(t, 1, countryCount)
	assert.EqualValues(t, 1, cityCount)
}

func TestResolveLocation_ReusesExistingCountry(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewLocationService(repositories.NewLocationRepository(db))

	_, err := svc.ResolveLocation("Tamarindo", "Costa Rica")
	require.NoError(t, err)

	_, err = svc.ResolveLocation("Jaco", "Costa Rica")
	require.NoError(t, err)

	var countryCount, cityCount int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countryCount).Error)
	require.NoError(t, db.Model(&models.City{}).Count(&cityCount).Error)
	assert.EqualValues(t, 1, countryCount)
	assert.EqualValues(t, 2, cityCount)
}

func TestResolveLocation_SameCityNameDifferentCountries(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewLocationService(repositories.NewLocationRepository(db))

	cr, err := svc.ResolveLocation("San Jose", "Costa Rica")
	require.NoError(t, err)

	us, err := svc.ResolveLocation("San Jose", "United States")
	require.NoError(t, err)

	assert.NotEqual(t, cr.ID, us.ID, "same name in different countries must be two cities")
}

func TestResolveLocation_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewLocationService(repositories.NewLocationRepository(db))

	tests := []struct {
		name    string
		city    string
		country string
	}{
		{"blank city", "   ", "Costa Rica"},
		{"blank country", "Tamarindo", ""},
		{"city slugs to empty", "!!!", "Costa Rica"},
		{"country slugs to empty", "Tamarindo", "🚐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ResolveLocation(tt.city, tt.country)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	// Nothing may have been persisted by the rejected calls.
	var countryCount int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countryCount).Error)
	assert.EqualValues(t, 0, countryCount)
}
