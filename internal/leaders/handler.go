package leaders

import (
	"idscope_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type leaderResponse struct {
	Country string `json:"country"`
	Known   bool   `json:"known"`
	Profile
}

type Handler struct {
	table *Table
}

func NewHandler(table *Table) *Handler {
	return &Handler{table: table}
}

// Get handles GET /api/v1/leaders/:country. Unmapped countries answer 200
// with the fallback profile and known=false.
func (h *Handler) Get(c *gin.Context) {
	country := c.Param("country")
	httpkit.OK(c, leaderResponse{
		Country: country,
		Known:   h.table.Has(country),
		Profile: h.table.Lookup(country),
	})
}

// List handles GET /api/v1/leaders
func (h *Handler) List(c *gin.Context) {
	countries := h.table.Countries()
	out := make([]leaderResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, leaderResponse{Country: country, Known: true, Profile: h.table.Lookup(country)})
	}
	httpkit.OK(c, gin.H{"items": out})
}
