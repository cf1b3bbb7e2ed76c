// File: /controllers/city_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ou8123/findshuttles-sub001/models"
)

func TestCreateCity_EndToEnd(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/countries", token, map[string]string{"name": "Costa Rica"})
	require.Equal(t, http.StatusCreated, w.Code)
	var country models.Country
	decodeBody(t, w, &country)

	lat, lng := 10.2993, -85.8371
	w = doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "Tamarindo",
		"country_id": country.ID,
		"latitude":   lat,
		"longitude":  lng,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var city models.City
	decodeBody(t, w, &city)
	assert.Equal(t, "tamarindo", city.Slug)
	assert.Equal(t, country.ID, city.CountryID)
	require.NotNil(t, city.Latitude)
	assert.InDelta(t, lat, *city.Latitude, 0.0001)
}

func TestCreateCity_UniquePerCountry(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	first := seedCity(t, db, "Costa Rica", "San Jose")

	// Same name in the same country: conflict.
	w := doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "San Jose",
		"country_id": first.CountryID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same name in a different country: fine.
	w = doJSON(t, r, http.MethodPost, "/api/admin/countries", token, map[string]string{"name": "United States"})
	require.Equal(t, http.StatusCreated, w.Code)
	var us models.Country
	decodeBody(t, w, &us)

	w = doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "San Jose",
		"country_id": us.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateCity_Validation(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)
	city := seedCity(t, db, "Costa Rica", "Jaco")

	// Unknown country.
	w := doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "Quepos",
		"country_id": uuid.New().String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Name that slugs to nothing.
	w = doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "!!!",
		"country_id": city.CountryID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Out-of-range coordinates.
	w = doJSON(t, r, http.MethodPost, "/api/admin/cities", token, map[string]interface{}{
		"name":       "Quepos",
		"country_id": city.CountryID,
		"latitude":   123.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCity_MoveCountryResyncsRoutes(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	depart := seedCity(t, db, "Costa Rica", "San Jose")
	arrive := seedCity(t, db, "Costa Rica", "Jaco")

	route := models.Route{
		ID:                   uuid.New().String(),
		RouteSlug:            "san-jose-to-jaco",
		DisplayName:          "San Jose to Jaco",
		DepartureCityID:      depart.ID,
		DestinationCityID:    arrive.ID,
		DepartureCountryID:   depart.CountryID,
		DestinationCountryID: arrive.CountryID,
	}
	require.NoError(t, db.Create(&route).Error)

	w := doJSON(t, r, http.MethodPost, "/api/admin/countries", token, map[string]string{"name": "Panama"})
	require.Equal(t, http.StatusCreated, w.Code)
	var panama models.Country
	decodeBody(t, w, &panama)

	w = doJSON(t, r, http.MethodPut, "/api/admin/cities/"+arrive.ID, token, map[string]interface{}{
		"name":       "Jaco",
		"country_id": panama.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The denormalized destination country on the route must follow the city.
	var stored models.Route
	require.NoError(t, db.First(&stored, "id = ?", route.ID).Error)
	assert.Equal(t, panama.ID, stored.DestinationCountryID)
	assert.Equal(t, depart.CountryID, stored.DepartureCountryID)
}

func TestDeleteCity_BlockedByRoutes(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	depart := seedCity(t, db, "Costa Rica", "San Jose")
	arrive := seedCity(t, db, "Costa Rica", "Jaco")

	route := models.Route{
		ID:                   uuid.New().String(),
		RouteSlug:            "san-jose-to-jaco",
		DisplayName:          "San Jose to Jaco",
		DepartureCityID:      depart.ID,
		DestinationCityID:    arrive.ID,
		DepartureCountryID:   depart.CountryID,
		DestinationCountryID: arrive.CountryID,
	}
	require.NoError(t, db.Create(&route).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/cities/"+arrive.ID, token, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, db.Delete(&models.Route{}, "id = ?", route.ID).Error)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/cities/"+arrive.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
