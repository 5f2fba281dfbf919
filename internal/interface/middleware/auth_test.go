package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	users := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("test-secret", 0), logger)

	_, token, err := users.Signup(context.Background(), "mw_user", "mw_user@example.com", "pw1234")
	require.NoError(t, err)

	r := gin.New()
	protected := r.Group("/")
	protected.Use(Auth(users))
	protected.GET("/whoami", func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": u.Username, "token": CurrentToken(c)})
	})
	return r, token
}

func TestAuth_MissingHeader(t *testing.T) {
	r, _ := newAuthFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String(), "rejection body is empty, no reason leaked")
}

func TestAuth_InvalidToken(t *testing.T) {
	r, token := newAuthFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AuthHeader, token+"x")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestAuth_ValidTokenAttachesIdentity(t *testing.T) {
	r, token := newAuthFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AuthHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"mw_user"`)
	assert.Contains(t, w.Body.String(), token, "raw token rides along for logout")
}
