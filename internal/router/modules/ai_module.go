package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mockmate/mockmate-api/internal/container"
	handlers "github.com/mockmate/mockmate-api/internal/interface/http"
	"github.com/mockmate/mockmate-api/internal/interface/middleware"
	"github.com/mockmate/mockmate-api/pkg/helpers"
)

// AIModule registers the Gemini-backed generation routes behind auth.
// These are the expensive endpoints, so the per-user limit is tighter.

type AIModule struct {
	Handler *handlers.AIHandler
	JWT     *helpers.JWTManager
}

func NewAIModule(h *handlers.AIHandler, jwt *helpers.JWTManager) *AIModule {
	return &AIModule{Handler: h, JWT: jwt}
}

func (m *AIModule) Register(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.Use(middleware.Auth(container.GetRedis(), m.JWT))
	ai.Use(middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil))
	{
		ai.POST("/generate-questions", m.Handler.GenerateQuestions)
		ai.POST("/generate-explanation", m.Handler.GenerateExplanation)
	}
}
