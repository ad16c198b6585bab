package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

func (h *TaskHandler) RegisterRoutes(r *gin.RouterGroup) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", h.List)
		tasks.GET("/:taskId", h.Get)
		tasks.PUT("/:taskId/status", h.UpdateStatus)
	}

	admin := r.Group("/tasks")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PATCH("/:taskId", h.Update)
		admin.DELETE("/:taskId", h.Delete)
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	createdByID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(createdByID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	taskID := c.Param("taskId")

	task, err := h.taskService.Get(taskID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Employees only see tasks assigned to them
	if !middleware.IsAdmin(c) && task.AssignedToID != userID {
		h.HandleServiceError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, limit := ParsePagination(c)
	assignedToID := c.Query("assigned_to_id")
	if !middleware.IsAdmin(c) {
		assignedToID = userID
	}
	status := models.TaskStatus(c.Query("status"))

	response, err := h.taskService.List(assignedToID, status, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID := c.Param("taskId")

	var req dto.UpdateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.Update(taskID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	taskID := c.Param("taskId")

	var req dto.UpdateTaskStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if !middleware.IsAdmin(c) {
		current, err := h.taskService.Get(taskID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if current.AssignedToID != userID {
			h.HandleServiceError(c, apperrors.ErrInsufficientPermissions)
			return
		}
	}

	task, err := h.taskService.UpdateStatus(taskID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID := c.Param("taskId")

	if err := h.taskService.Delete(taskID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
