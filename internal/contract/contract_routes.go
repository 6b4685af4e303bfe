package contract

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	contracts := r.Group("/contracts")
	{
		contracts.GET("", h.GetAll)
		contracts.GET("/:id", h.GetByID)
		contracts.POST("", h.Create)
		contracts.PUT("/:id", h.Update)
		contracts.DELETE("/:id", h.Delete)
		contracts.POST("/:id/finalize", h.Finalize)
		contracts.POST("/:id/close", h.Close)
		contracts.POST("/:id/reopen", h.Reopen)
	}
}
