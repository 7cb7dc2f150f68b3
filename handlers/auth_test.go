package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"full_name": "New User",
		"email":     "new@example.com",
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := parseJSON(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// The issued token is accepted by the auth middleware
	w = doRequest(r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new@example.com", parseJSON(t, w)["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTestRouter(t)
	createTestUser(t, "u@example.com", "User One")

	w := doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "u@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", parseJSON(t, w)["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)
	createTestUser(t, "u@example.com", "User One")

	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"full_name": "Dup",
		"email":     "u@example.com",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", parseJSON(t, w)["error"])
}

func TestRegisterInvalidEmail(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"full_name": "New User",
		"email":     "not-an-email",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHeaderWithoutToken(t *testing.T) {
	r := setupTestRouter(t)

	// Scheme only, no second segment
	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	req.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", parseJSON(t, w)["error"])
}

func TestAuthIgnoresSchemeName(t *testing.T) {
	r := setupTestRouter(t)
	_, token := createTestUser(t, "u@example.com", "User One")

	// The scheme prefix is discarded without validating its name
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
