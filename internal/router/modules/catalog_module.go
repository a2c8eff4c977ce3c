package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/container"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/interface/middleware"
)

// CatalogModule wires the public specialization and language catalogs.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	catalog := rg.Group("/catalog")
	catalog.GET("/specializations", rl, m.Handler.ListSpecializations)
	catalog.GET("/languages", rl, m.Handler.ListLanguages)
}
