package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/container"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/interface/middleware"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// LawyerModule wires the step-by-step lawyer onboarding routes.
type LawyerModule struct {
	Handler *handlers.LawyerHandler
	JWT     *helpers.JWTManager
}

func NewLawyerModule(h *handlers.LawyerHandler, jwt *helpers.JWTManager) *LawyerModule {
	return &LawyerModule{Handler: h, JWT: jwt}
}

func (m *LawyerModule) Register(rg *gin.RouterGroup) {
	// document uploads hit GCS, keep them on a tighter budget
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByAccountID(), nil)

	auth := rg.Group("/lawyer")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/onboarding", m.Handler.StartOnboarding)
		auth.POST("/onboarding/credentials", m.Handler.SaveCredentials)
		auth.POST("/onboarding/specializations", m.Handler.SaveSpecializations)
		auth.POST("/onboarding/documents", uploadLimiter, m.Handler.UploadDocument)
		auth.POST("/onboarding/submit", m.Handler.SubmitForReview)
		auth.GET("/onboarding", m.Handler.GetProfile)
	}
}
