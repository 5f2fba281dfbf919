package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,min=8,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Either username or email identifies the account; password is always
// required. Presence of both is allowed and username takes precedence.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /users
// Returns the created user (password omitted) and sets x-auth with a fresh
// token.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.ToDetails(err)})
		return
	}

	u, token, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, response.User(u))
}

// Login POST /users/login
// 200 with empty body and a fresh x-auth header; 404 when no user matches,
// 400 on a wrong password.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.ToDetails(err)})
		return
	}
	if req.Username == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "username or email is required"}})
		return
	}

	_, token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{})
		return
	case errors.Is(err, application.ErrBadCredentials):
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, gin.H{})
}

// Logout DELETE /users/me/token
// Revokes exactly the token the request authenticated with.
func (h *UserHandler) Logout(c *gin.Context) {
	u := middleware.CurrentUser(c)
	token := middleware.CurrentToken(c)

	if err := h.Svc.RevokeSession(c.Request.Context(), u, token); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("revoke failed")
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, response.User(u))
}
