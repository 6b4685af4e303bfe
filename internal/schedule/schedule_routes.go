package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/contracts/:id/schedule", h.Get)
	r.PUT("/contracts/:id/schedule", h.Put)
}
