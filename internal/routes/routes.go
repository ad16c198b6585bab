package routes

import (
	"net/http"

	"namedesk_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.CustomerHandler.RegisterRoutes(api)
		appHandlers.TaskHandler.RegisterRoutes(api)
		appHandlers.LeaveHandler.RegisterRoutes(api)
		appHandlers.BabyNameHandler.RegisterRoutes(api)
		appHandlers.PDFHandler.RegisterRoutes(api)
	}
}
