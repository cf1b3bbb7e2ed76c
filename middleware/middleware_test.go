// File: /middleware/middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ou8123/findshuttles-sub001/middleware"
	"github.com/ou8123/findshuttles-sub001/models"
)

const secret = "test-secret"

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", middleware.AdminAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func signToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, header, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	r := gatedRouter()

	adminClaims := jwt.MapClaims{
		"sub":  "user-1",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid bearer token", func(t *testing.T) {
		w := get(r, "Bearer "+signToken(t, secret, adminClaims), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid session cookie", func(t *testing.T) {
		w := get(r, "", signToken(t, secret, adminClaims))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := get(r, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		w := get(r, "Bearer "+signToken(t, "other-secret", adminClaims), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.MapClaims{
			"sub":  "user-1",
			"role": models.RoleAdmin,
			"exp":  time.Now().Add(-time.Hour).Unix(),
		}
		w := get(r, "Bearer "+signToken(t, secret, expired), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		user := jwt.MapClaims{
			"sub":  "user-2",
			"role": models.RoleUser,
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		w := get(r, "Bearer "+signToken(t, secret, user), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing role claim", func(t *testing.T) {
		w := get(r, "Bearer "+signToken(t, secret, jwt.MapClaims{
			"sub": "user-3",
			"exp": time.Now().Add(time.Hour).Unix(),
		}), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", middleware.RateLimit(10, 3), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusOK, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3], "burst exhausted")
	assert.Equal(t, http.StatusTooManyRequests, codes[4])
}
