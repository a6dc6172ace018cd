package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PenguinAlex/task-tracker/internal/domain"
	"github.com/PenguinAlex/task-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users service.UserService
	tasks service.TaskService
	log   *logrus.Logger
}

func NewHandler(users service.UserService, tasks service.TaskService, log *logrus.Logger) *Handler {
	return &Handler{
		users: users,
		tasks: tasks,
		log:   log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.log))

	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/task", h.createTask)
	router.PATCH("/task/:id", h.updateTaskStatus)
	router.DELETE("/task/:id", h.deleteTask)
	router.GET("/tasks", h.listTasks)

	router.GET("/api-docs", h.apiDocs)
	router.GET("/api-docs/openapi.json", h.openAPISpec)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Username string `json:"username" binding:"required"`
	Task     string `json:"task" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type TaskResponse struct {
	ID       int64             `json:"id"`
	Username string            `json:"username"`
	Task     string            `json:"task"`
	Status   domain.TaskStatus `json:"status"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)

		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request")
	}
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "username and password are required")
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.String(http.StatusBadRequest, "user already exists")
			return
		}
		h.log.WithError(err).Error("register user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.String(http.StatusCreated, "user registered")
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// missing credentials can never match, fold into the same response
		c.String(http.StatusBadRequest, "invalid username or password")
		return
	}

	if _, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.String(http.StatusBadRequest, "invalid username or password")
			return
		}
		h.log.WithError(err).Error("authenticate user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.String(http.StatusOK, "login successful")
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "username and task are required")
		return
	}

	if _, err := h.tasks.Create(c.Request.Context(), req.Username, req.Task); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusBadRequest, "user not found")
			return
		}
		h.log.WithError(err).Error("create task")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.String(http.StatusCreated, "task created")
}

func (h *Handler) updateTaskStatus(c *gin.Context) {
	// a non-numeric id leaves id at 0, which matches no task and falls
	// through to the not-found response
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	// the not-found check precedes status validation, so the body is
	// bound best-effort and a malformed one behaves as an empty status
	var req updateStatusRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.tasks.UpdateStatus(c.Request.Context(), id, domain.TaskStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			c.String(http.StatusNotFound, "task not found")
		case errors.Is(err, service.ErrInvalidStatus):
			c.String(http.StatusBadRequest, "invalid status")
		default:
			h.log.WithError(err).Error("update task status")
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.String(http.StatusOK, "status updated")
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		h.log.WithError(err).Error("delete task")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.String(http.StatusOK, "task deleted")
}

func (h *Handler) listTasks(c *gin.Context) {
	username := c.Query("username")

	tasks, err := h.tasks.ListByUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusBadRequest, "user not found")
			return
		}
		h.log.WithError(err).Error("list tasks")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = TaskResponse{
			ID:       tasks[i].ID,
			Username: tasks[i].Username,
			Task:     tasks[i].Description,
			Status:   tasks[i].Status,
		}
	}
	c.JSON(http.StatusOK, resp)
}
