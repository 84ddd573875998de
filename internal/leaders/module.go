package leaders

import (
	apphttp "idscope_backend/internal/http"
	"idscope_backend/platform/config"
	"idscope_backend/platform/logger"
	"idscope_backend/platform/validator"
)

// Module exposes the leader table over HTTP and to the lookup pipeline.
type Module struct {
	table   *Table
	handler *Handler
}

// NewModule loads the leader table, preferring the configured override file.
func NewModule(cfg config.LeaderConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	table, err := Load(cfg.GetLeaderTablePath(), val)
	if err != nil {
		return nil, err
	}
	log.Info("leader table loaded", "countries", len(table.Countries()), "override", cfg.GetLeaderTablePath() != "")
	return &Module{table: table, handler: NewHandler(table)}, nil
}

// Table returns the loaded leader table.
func (m *Module) Table() *Table {
	return m.table
}

func (m *Module) Name() string {
	return "leaders"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/leaders")
	group.GET("", m.handler.List)
	group.GET("/:country", m.handler.Get)
}

var _ apphttp.Module = (*Module)(nil)
