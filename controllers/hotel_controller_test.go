// File: /controllers/hotel_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ou8123/findshuttles-sub001/models"
)

func TestHotelCRUD(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/hotels", token, map[string]string{"name": "Hotel Perico"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var hotel models.Hotel
	decodeBody(t, w, &hotel)

	// Duplicate name.
	w = doJSON(t, r, http.MethodPost, "/api/admin/hotels", token, map[string]string{"name": "Hotel Perico"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/hotels/"+hotel.ID, token, map[string]string{"name": "Hotel Perico Azul"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/hotels", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hotels []models.Hotel
	decodeBody(t, w, &hotels)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Hotel Perico Azul", hotels[0].Name)
}

// The whole hotels-served flow over HTTP: create the hotel, attach it to a
// route via hotel_ids, then delete it and watch the link go away.
func TestHotel_AttachAndDetachViaRoutes(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	depart := seedCity(t, db, "Costa Rica", "San Jose")
	arrive := seedCity(t, db, "Costa Rica", "Jaco")

	w := doJSON(t, r, http.MethodPost, "/api/admin/hotels", token, map[string]string{"name": "Hotel Perico"})
	require.Equal(t, http.StatusCreated, w.Code)
	var hotel models.Hotel
	decodeBody(t, w, &hotel)

	w = doJSON(t, r, http.MethodPost, "/api/admin/routes", token, map[string]interface{}{
		"departure_city_id":   depart.ID,
		"destination_city_id": arrive.ID,
		"hotel_ids":           []string{hotel.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var route models.Route
	decodeBody(t, w, &route)

	var stored models.Route
	require.NoError(t, db.Preload("HotelsServed").First(&stored, "id = ?", route.ID).Error)
	require.Len(t, stored.HotelsServed, 1)
	assert.Equal(t, "Hotel Perico", stored.HotelsServed[0].Name)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/hotels/"+hotel.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The route survives, minus the hotel link.
	require.NoError(t, db.Preload("HotelsServed").First(&stored, "id = ?", route.ID).Error)
	assert.Empty(t, stored.HotelsServed)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/hotels/"+hotel.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
