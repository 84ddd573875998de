package lookup

import (
	"idscope_backend/internal/lookup/service"
	"idscope_backend/internal/lookup/transport"
	"idscope_backend/internal/views"
	"idscope_backend/platform/apperr"
	"idscope_backend/platform/httpkit"
	"idscope_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc   *service.Service
	views *views.Registry
	val   *validator.Validator
}

func NewHandler(svc *service.Service, registry *views.Registry, val *validator.Validator) *Handler {
	return &Handler{svc: svc, views: registry, val: val}
}

// Lookup handles POST /api/v1/views/:viewID/lookups
func (h *Handler) Lookup(c *gin.Context) {
	var req transport.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid lookup request").WithDetails(validator.FieldErrors(err)))
		return
	}

	viewID, ok := httpkit.ViewID(c)
	if !ok {
		httpkit.HandleError(c, apperr.Unauthorized("missing view"))
		return
	}
	view, err := h.views.Get(viewID)
	if httpkit.HandleError(c, err) {
		return
	}

	report, err := h.svc.Process(c.Request.Context(), view, req.ID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, report)
}

// Classify handles GET /api/v1/classify?id=
func (h *Handler) Classify(c *gin.Context) {
	var q transport.ClassifyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid query"))
		return
	}
	if err := h.val.Struct(q); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid classify query").WithDetails(validator.FieldErrors(err)))
		return
	}
	httpkit.OK(c, h.svc.Classify(q.ID))
}
