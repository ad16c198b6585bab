package handlers

import (
	"net/http"

	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PDFHandler struct {
	*BaseHandler
	pdfService services.PDFService
}

func NewPDFHandler(base *BaseHandler, pdfService services.PDFService) *PDFHandler {
	return &PDFHandler{
		BaseHandler: base,
		pdfService:  pdfService,
	}
}

func (h *PDFHandler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/pdf-records")
	records.Use(middleware.AuthMiddleware())
	{
		records.POST("", h.RecordGeneration)
		records.GET("/my", h.ListMine)
	}
}

// ListMine returns the reports generated by the caller.
func (h *PDFHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	records, err := h.pdfService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *PDFHandler) RecordGeneration(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePDFRecordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.pdfService.RecordGeneration(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
