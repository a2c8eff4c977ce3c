package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/container"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/interface/middleware"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// AdminModule wires the admin moderation routes. Authorization is enforced
// by the use cases against the database, not by route middleware.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByAccountID(), nil))
	// moderation writes get a tighter per-IP+path budget
	moderateLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.GET("/users/search", m.Handler.SearchUsers)
		admin.POST("/users/:id/ban", moderateLimiter, m.Handler.BanUser)
		admin.POST("/users/:id/unban", moderateLimiter, m.Handler.UnbanUser)
		admin.PATCH("/users/:id/role", moderateLimiter, m.Handler.ChangeRole)
	}
}
