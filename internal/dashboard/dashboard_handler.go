package dashboard

import (
	"net/http"
	"time"

	"colfdesk/internal/shared/apperror"
	"colfdesk/internal/shared/response"
	"colfdesk/internal/timesheet"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	at := time.Now().UTC()
	if v := c.Query("at"); v != "" {
		parsed, err := timesheet.ParseDate(v)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		at = parsed
	}

	resp, err := h.service.Generate(c.Request.Context(), at)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/dashboard", h.Get)
}
