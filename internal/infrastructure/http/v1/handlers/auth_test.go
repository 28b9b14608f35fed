package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/domain/auth"
)

type mockUserRepo struct {
	users map[string]*auth.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*auth.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, u *auth.User) error {
	m.users[u.Username] = u
	return nil
}

func (m *mockUserRepo) GetActiveByUsername(ctx context.Context, username string) (*auth.User, error) {
	u, ok := m.users[username]
	if !ok || !u.IsActive {
		return nil, apperror.NewNotFound("user")
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

func newAuthRouter(repo auth.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := auth.NewService(repo, auth.NewJWTService(auth.DefaultJWTConfig("test-secret")))
	h := NewAuthHandler(NewBaseHandler(), svc)

	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsTopLevelTokenAndUser(t *testing.T) {
	router := newAuthRouter(newMockUserRepo())

	w := postJSON(router, "/api/auth/register", `{"username":"operator","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, resp, "data")
	assert.NotContains(t, resp, "message")

	user, ok := resp["user"].(map[string]any)
	require.True(t, ok, "user must sit beside success, not under data")
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "operator", user["username"])
	assert.Equal(t, "user", user["role"])
}

func TestLoginReturnsTopLevelTokenAndUser(t *testing.T) {
	repo := newMockUserRepo()
	router := newAuthRouter(repo)

	w := postJSON(router, "/api/auth/register", `{"username":"operator","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/auth/login", `{"username":"operator","password":"secret1"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, resp, "data")

	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "operator", user["username"])
	assert.Equal(t, "user", user["role"])
}
