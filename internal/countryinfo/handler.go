package countryinfo

import (
	"idscope_backend/internal/countryinfo/service"
	"idscope_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the country profile endpoint.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetProfile handles GET /api/v1/countries/:name
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.svc.GetProfile(c.Request.Context(), c.Param("name"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, profile)
}
