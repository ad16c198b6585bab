package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	*BaseHandler
	customerService services.CustomerService
	pdfService      services.PDFService
}

func NewCustomerHandler(base *BaseHandler, customerService services.CustomerService, pdfService services.PDFService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     base,
		customerService: customerService,
		pdfService:      pdfService,
	}
}

func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:customerId", h.Get)
		customers.PATCH("/:customerId", h.Update)
		customers.PUT("/:customerId/status", h.UpdateStatus)
		customers.GET("/:customerId/pdf-records", h.ListPDFRecords)
	}

	admin := r.Group("/customers")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.DELETE("/:customerId", h.Delete)
	}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	customerID := c.Param("customerId")

	customer, err := h.customerService.Get(customerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	page, limit := ParsePagination(c)
	status := models.CustomerStatus(c.Query("status"))
	assignedToID := c.Query("assigned_to_id")

	response, err := h.customerService.List(status, assignedToID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	customerID := c.Param("customerId")

	var req dto.UpdateCustomerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(customerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	customerID := c.Param("customerId")

	var req dto.UpdateCustomerStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateStatus(customerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID := c.Param("customerId")

	if err := h.customerService.Delete(customerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

func (h *CustomerHandler) ListPDFRecords(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	customerID := c.Param("customerId")

	records, err := h.pdfService.ListForCustomer(customerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   len(records),
	})
}
