package views

import (
	"net/http"
	"time"

	"idscope_backend/platform/apperr"
	"idscope_backend/platform/httpkit"
	"idscope_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createViewResponse struct {
	ViewID    uuid.UUID `json:"viewId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Handler struct {
	registry *Registry
	tokens   *Tokens
	log      *logger.Logger
}

func NewHandler(registry *Registry, tokens *Tokens, log *logger.Logger) *Handler {
	return &Handler{registry: registry, tokens: tokens, log: log}
}

// Create handles POST /api/v1/views
func (h *Handler) Create(c *gin.Context) {
	view := h.registry.Create()
	token, expiresAt, err := h.tokens.Issue(view.ID)
	if err != nil {
		h.registry.Delete(view.ID)
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "could not issue view token", err))
		return
	}

	h.log.WithContext(c.Request.Context()).Info("view created", "view_id", view.ID.String())
	httpkit.Created(c, createViewResponse{ViewID: view.ID, Token: token, ExpiresAt: expiresAt})
}

// Map handles GET /api/v1/views/:viewID/map
func (h *Handler) Map(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	httpkit.OK(c, view.Snapshot())
}

// Delete handles DELETE /api/v1/views/:viewID
func (h *Handler) Delete(c *gin.Context) {
	id, ok := httpkit.ViewID(c)
	if !ok {
		httpkit.HandleError(c, apperr.Unauthorized("missing view"))
		return
	}
	h.registry.Delete(id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) view(c *gin.Context) (*View, bool) {
	id, ok := httpkit.ViewID(c)
	if !ok {
		httpkit.HandleError(c, apperr.Unauthorized("missing view"))
		return nil, false
	}
	view, err := h.registry.Get(id)
	if httpkit.HandleError(c, err) {
		return nil, false
	}
	return view, true
}
