package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:employeeId", h.GetEmployee)
	}

	admin := r.Group("/employees")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.CreateEmployee)
		admin.PUT("/:employeeId", h.UpdateEmployee)
		admin.DELETE("/:employeeId", h.DeleteEmployee)
	}
}

func (h *UserHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.userService.CreateEmployee(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *UserHandler) GetEmployee(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	employeeID := c.Param("employeeId")

	employee, err := h.userService.GetEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *UserHandler) ListEmployees(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	page, limit := ParsePagination(c)

	response, err := h.userService.ListEmployees(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) UpdateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var req dto.UpdateEmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.userService.UpdateEmployee(employeeID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *UserHandler) DeleteEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	if err := h.userService.DeleteEmployee(employeeID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
