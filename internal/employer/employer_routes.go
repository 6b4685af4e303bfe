package employer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employers := r.Group("/employers")
	{
		employers.GET("", h.GetAll)
		employers.GET("/:id", h.GetByID)
		employers.POST("", h.Create)
		employers.PUT("/:id", h.Update)
		employers.DELETE("/:id", h.Delete)
	}
}
