package worker

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	workers := r.Group("/workers")
	{
		workers.GET("", h.GetAll)
		workers.GET("/:id", h.GetByID)
		workers.POST("", h.Create)
		workers.PUT("/:id", h.Update)
		workers.DELETE("/:id", h.Delete)
	}
}
