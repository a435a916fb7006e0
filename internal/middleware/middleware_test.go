package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hemanth-Kumar-P/weekly/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	var gotAdminID interface{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = r.Context().Value(ContextKeyAdminID)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(cfg)(next)

	// no header
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/api/customers", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// malformed header
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/customers", nil)
	req.Header.Set("Authorization", "Token abc")
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// expired token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", time.Now().Add(-time.Hour)))
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong secret
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Now().Add(time.Hour)))
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", time.Now().Add(time.Hour)))
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", gotAdminID)
}
