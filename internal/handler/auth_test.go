package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/auth"
	"github.com/JoakoBallesteros/workforce-staffing/internal/handler"
)

func devAuthConfig(devMode bool) *auth.Config {
	return &auth.Config{
		DevMode:      devMode,
		JWTSecret:    []byte("01234567890123456789012345678901"),
		JWTExpiry:    time.Hour,
		JWTIssuer:    "workforce-staffing-api",
		CookieSecure: false,
	}
}

func TestDevLoginIssuesTokenForValidRole(t *testing.T) {
	cfg := devAuthConfig(true)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	h := handler.NewAuthHandler(cfg, jwtManager)

	req := httptest.NewRequest(http.MethodGet, "/auth/dev/login?role=admin", nil)
	rr := httptest.NewRecorder()

	h.DevLogin(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	claims, err := jwtManager.Validate(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestDevLoginRejectsUnknownRole(t *testing.T) {
	cfg := devAuthConfig(true)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	h := handler.NewAuthHandler(cfg, jwtManager)

	req := httptest.NewRequest(http.MethodGet, "/auth/dev/login?role=superadmin", nil)
	rr := httptest.NewRecorder()

	h.DevLogin(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDevLoginDisabledOutsideDevMode(t *testing.T) {
	cfg := devAuthConfig(false)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	h := handler.NewAuthHandler(cfg, jwtManager)

	req := httptest.NewRequest(http.MethodGet, "/auth/dev/login", nil)
	rr := httptest.NewRecorder()

	h.DevLogin(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
