package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BabyNameHandler struct {
	*BaseHandler
	babyNameService services.BabyNameService
}

func NewBabyNameHandler(base *BaseHandler, babyNameService services.BabyNameService) *BabyNameHandler {
	return &BabyNameHandler{
		BaseHandler:     base,
		babyNameService: babyNameService,
	}
}

func (h *BabyNameHandler) RegisterRoutes(r *gin.RouterGroup) {
	names := r.Group("/baby-names")
	names.Use(middleware.AuthMiddleware())
	{
		names.GET("", h.List)
		names.GET("/:nameId", h.Get)
	}

	admin := r.Group("/baby-names")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.POST("/bulk", h.CreateBulk)
		admin.PATCH("/:nameId", h.Update)
		admin.DELETE("/:nameId", h.Delete)
	}
}

func (h *BabyNameHandler) Create(c *gin.Context) {
	var req dto.CreateBabyNameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	name, err := h.babyNameService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, name)
}

func (h *BabyNameHandler) CreateBulk(c *gin.Context) {
	var req dto.BulkCreateBabyNamesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	created, err := h.babyNameService.CreateBulk(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}

func (h *BabyNameHandler) Get(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	nameID := c.Param("nameId")

	name, err := h.babyNameService.Get(nameID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, name)
}

func (h *BabyNameHandler) List(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	page, limit := ParsePagination(c)
	criteria := dto.BabyNameCriteria{
		Gender:   c.Query("gender"),
		Rashi:    c.Query("rashi"),
		Zodiac:   c.Query("zodiac"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: limit,
	}

	response, err := h.babyNameService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BabyNameHandler) Update(c *gin.Context) {
	nameID := c.Param("nameId")

	var req dto.UpdateBabyNameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	name, err := h.babyNameService.Update(nameID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, name)
}

func (h *BabyNameHandler) Delete(c *gin.Context) {
	nameID := c.Param("nameId")

	if err := h.babyNameService.Delete(nameID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Baby name deleted successfully"})
}
