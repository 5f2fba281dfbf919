package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

// TodoHandler is thin route glue: pick fields from the body, call the
// service, map errors to status codes. All routes run behind Auth.
type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Text string `json:"text" binding:"required"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// todoID validates the :id path segment; a malformed id is a 400, a missing
// record a 404.
func todoID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return "", false
	}
	return id, true
}

// Create POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.ToDetails(err)})
		return
	}

	u := middleware.CurrentUser(c)
	t, err := h.Svc.Create(c.Request.Context(), u.ID, req.Text)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
			return
		}
		h.Logger.WithError(err).Error("create todo failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusOK, response.Todo(t))
}

// List GET /todos
func (h *TodoHandler) List(c *gin.Context) {
	u := middleware.CurrentUser(c)
	todos, err := h.Svc.List(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("list todos failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"todos": response.Todos(todos)})
}

// Get GET /todo/:id
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	u := middleware.CurrentUser(c)
	t, err := h.Svc.Get(c.Request.Context(), id, u.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Todo(t))
}

// Update PATCH /todo/:id
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.ToDetails(err)})
		return
	}

	u := middleware.CurrentUser(c)
	t, err := h.Svc.Update(c.Request.Context(), id, u.ID, application.UpdateTodoInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Todo(t))
}

// Delete DELETE /todo/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	u := middleware.CurrentUser(c)
	t, err := h.Svc.Delete(c.Request.Context(), id, u.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Todo(t))
}

func (h *TodoHandler) respondError(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	default:
		h.Logger.WithError(err).Error("todo request failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
	}
}
