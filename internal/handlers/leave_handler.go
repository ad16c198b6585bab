package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	*BaseHandler
	leaveService services.LeaveService
}

func NewLeaveHandler(base *BaseHandler, leaveService services.LeaveService) *LeaveHandler {
	return &LeaveHandler{
		BaseHandler:  base,
		leaveService: leaveService,
	}
}

func (h *LeaveHandler) RegisterRoutes(r *gin.RouterGroup) {
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", h.Create)
		leaves.GET("/my", h.ListMine)
		leaves.GET("/:leaveId", h.Get)
	}

	admin := r.Group("/leave-requests")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.ListAll)
		admin.PUT("/:leaveId/decision", h.Decide)
	}
}

func (h *LeaveHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	leave, err := h.leaveService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func (h *LeaveHandler) Get(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	leaveID := c.Param("leaveId")

	leave, err := h.leaveService.Get(leaveID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

func (h *LeaveHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, limit := ParsePagination(c)

	response, err := h.leaveService.ListForUser(userID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LeaveHandler) ListAll(c *gin.Context) {
	page, limit := ParsePagination(c)
	status := models.LeaveStatus(c.Query("status"))

	response, err := h.leaveService.ListAll(status, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LeaveHandler) Decide(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	leaveID := c.Param("leaveId")

	var req dto.DecideLeaveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	leave, err := h.leaveService.Decide(adminID, leaveID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}
