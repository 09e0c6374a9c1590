package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THANH290803/companyName/internal/auth"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Alice",
		"email":    "alice@x.com",
		"password": "Abc123!@",
		"role_id":  1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user in response")
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "alice@x.com", user["email"])
	assert.NotZero(t, user["id"])

	// The password never appears in a response, hashed or otherwise.
	assert.NotContains(t, rec.Body.String(), "Abc123!@")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")

	rec := env.do(http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Another Alice",
		"email":    "alice@x.com",
		"password": "Xyz789!@",
		"role_id":  1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestRegister_WeakPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Alice",
		"email":    "alice@x.com",
		"password": "abc123", // no symbol
		"role_id":  1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/user/register", "", map[string]any{
		"email": "alice@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")

	rec := env.do(http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "alice@x.com",
		"password": "Abc123!@",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user in response")
	assert.Equal(t, "alice@x.com", user["email"])
}

func TestLogin_BadCredentials_SameShape(t *testing.T) {
	env := newTestEnv(t)
	env.register("Alice", "alice@x.com", "Abc123!@")

	wrongPass := env.do(http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "alice@x.com",
		"password": "Wrong123!@",
	})
	unknown := env.do(http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "nobody@x.com",
		"password": "Abc123!@",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	// Identical body for both failures, no account enumeration.
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

// The full journey: register, login, call a protected route, then the
// rejection cases for missing and expired tokens.
func TestProtectedRouteScenario(t *testing.T) {
	env := newTestEnv(t)

	env.register("Alice", "alice@x.com", "Abc123!@")
	token := env.login("alice@x.com", "Abc123!@")

	ok := env.do(http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusOK, ok.Code)

	noHeader := env.do(http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noHeader.Code)

	expiredSvc := &auth.TokenService{Secret: []byte("test-jwt-secret"), TTL: -time.Minute}
	expired, _, err := expiredSvc.Issue(1, 1)
	require.NoError(t, err)
	expiredRec := env.do(http.MethodGet, "/api/user", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, expiredRec.Code)

	forged := env.do(http.MethodGet, "/api/user", token+"x", nil)
	assert.Equal(t, http.StatusUnauthorized, forged.Code)
}
