// File: /controllers/helpers_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/config"
	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/routes"
	"github.com/ou8123/findshuttles-sub001/testutil"
)

const testJWTSecret = "test-secret"

// newTestServer wires the full router (auth gate included) over a fresh
// in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		SiteURL:   "https://test.example",
	}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

// adminToken mints a signed token carrying the ADMIN role, the same shape
// the login endpoint issues.
func adminToken(t *testing.T) string {
	t.Helper()
	return mintToken(t, models.RoleAdmin)
}

func mintToken(t *testing.T, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "admin@test.example",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the test router. An empty token leaves
// the request unauthenticated.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

// seedCity inserts a country (if needed) and a city directly, bypassing
// the HTTP surface, for tests that only need fixtures.
func seedCity(t *testing.T, db *gorm.DB, countryName, cityName string) models.City {
	t.Helper()

	countrySlug := slugify(countryName)
	var country models.Country
	err := db.Where("slug = ?", countrySlug).First(&country).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		country = models.Country{ID: uuid.New().String(), Name: countryName, Slug: countrySlug}
		require.NoError(t, db.Create(&country).Error)
	}

	city := models.City{
		ID:        uuid.New().String(),
		Name:      cityName,
		Slug:      slugify(cityName),
		CountryID: country.ID,
	}
	require.NoError(t, db.Create(&city).Error)
	return city
}

// slugify is a minimal fixture-name helper; production slugs come from
// utils.GenerateSlug, which has its own tests.
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}
