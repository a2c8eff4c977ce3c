package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/container"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/interface/middleware"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// AccountModule wires the authenticated account profile routes.
// Protected: GET /api/profile, PATCH /api/profile
type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PATCH("/profile", m.Handler.UpdateProfile)
	}
}
