package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// AuthHeader carries the signed session token on requests and responses.
const AuthHeader = "x-auth"

const (
	CtxUserKey  = "authUser"
	CtxTokenKey = "authToken"
)

// Auth resolves the x-auth header to a live user session or rejects the
// request. Every rejection is a 401 with an empty JSON body; the reason is
// deliberately not exposed to the caller.
func Auth(users *application.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{})
			return
		}
		u, err := users.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{})
			return
		}
		// The raw token rides along so logout can revoke exactly this session.
		c.Set(CtxUserKey, u)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth, or nil outside a protected
// route.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// CurrentToken returns the raw token the request authenticated with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(CtxTokenKey)
}
