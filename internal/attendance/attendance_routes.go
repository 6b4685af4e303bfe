package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	contracts := r.Group("/contracts/:id")
	{
		contracts.GET("/attendances", h.ListMonth)
		contracts.PUT("/attendances/:date", h.Upsert)
		contracts.GET("/attendances/:date/justifications", h.GetJustifications)
		contracts.PUT("/attendances/:date/justifications", h.ReplaceJustifications)
		contracts.GET("/justifications", h.MonthCoverage)
	}
}
