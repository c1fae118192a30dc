package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты ростера
	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/stats", h.getStats)
		users.POST("/:id/presence", h.setPresence)
	}

	// Отчёты о позиции
	api.POST("/locations", h.reportLocation)

	// SOS-события: публикация и подписка
	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.publishAlert)
		alerts.GET("/ws", h.subscribeAlerts)
	}

	// Расчёт маршрута через внешнего провайдера
	api.POST("/routes", h.computeRoute)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
