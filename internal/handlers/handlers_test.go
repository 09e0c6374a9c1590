package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/auth"
	"github.com/THANH290803/companyName/internal/config"
	"github.com/THANH290803/companyName/internal/handlers"
	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
	"github.com/THANH290803/companyName/internal/models"
	httpserver "github.com/THANH290803/companyName/internal/transport/http"
)

type testEnv struct {
	t      *testing.T
	e      *echo.Echo
	db     *gorm.DB
	tokens *auth.TokenService
}

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := initTestDB(t)
	require.NoError(t, db.Create(&models.Role{Name: "member"}).Error)

	tokens := &auth.TokenService{Secret: []byte("test-jwt-secret"), TTL: time.Hour}
	store := &auth.Store{DB: db}

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		DB:   db,
		Gate: mwauth.NewGate(tokens),

		AuthHandler:           &handlers.AuthHandler{DB: db, Store: store, Tokens: tokens},
		UserHandler:           &handlers.UserHandler{DB: db},
		RoleHandler:           &handlers.RoleHandler{DB: db},
		CompanyHandler:        &handlers.CompanyHandler{DB: db},
		DepartmentHandler:     &handlers.DepartmentHandler{DB: db},
		TeamHandler:           &handlers.TeamHandler{DB: db},
		ProjectHandler:        &handlers.ProjectHandler{DB: db},
		TaskStatusHandler:     &handlers.TaskStatusHandler{DB: db},
		ApprovalStatusHandler: &handlers.ApprovalStatusHandler{DB: db},
		TaskStageHandler:      &handlers.TaskStageHandler{DB: db},
		TaskHandler:           &handlers.TaskHandler{DB: db},
		TaskPermissionHandler: &handlers.TaskPermissionHandler{DB: db},
		TaskMessageHandler:    &handlers.TaskMessageHandler{DB: db},
	})

	return &testEnv{t: t, e: e, db: db, tokens: tokens}
}

func (env *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	env.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates a user through the API and returns its id.
func (env *testEnv) register(name, email, password string) uint {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
		"role_id":  1,
	})
	require.Equal(env.t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	body := decode(env.t, rec)
	user := body["user"].(map[string]any)
	return uint(user["id"].(float64))
}

// login authenticates through the API and returns the bearer token.
func (env *testEnv) login(email, password string) string {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(env.t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	body := decode(env.t, rec)
	token, ok := body["token"].(string)
	require.True(env.t, ok, "expected token in login response")
	require.NotEmpty(env.t, token)
	return token
}
