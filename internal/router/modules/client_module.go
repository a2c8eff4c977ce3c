package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/container"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/interface/middleware"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// ClientModule wires the client onboarding and profile routes.
// Protected: POST /api/onboarding/complete plus /api/clients/me CRUD
type ClientModule struct {
	Handler *handlers.ClientHandler
	JWT     *helpers.JWTManager
}

func NewClientModule(h *handlers.ClientHandler, jwt *helpers.JWTManager) *ClientModule {
	return &ClientModule{Handler: h, JWT: jwt}
}

func (m *ClientModule) Register(rg *gin.RouterGroup) {
	// onboarding is a one-shot endpoint, keep the limit tight
	completeLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByAccountID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/onboarding/complete", completeLimiter, m.Handler.CompleteOnboarding)
		auth.GET("/clients/me", m.Handler.GetProfile)
		auth.PATCH("/clients/me", m.Handler.UpdateProfile)
		auth.POST("/clients/me/specializations", m.Handler.AddSpecialization)
		auth.DELETE("/clients/me/specializations/:id", m.Handler.RemoveSpecialization)
	}
}
