package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mockmate/mockmate-api/internal/container"
	handlers "github.com/mockmate/mockmate-api/internal/interface/http"
	"github.com/mockmate/mockmate-api/internal/interface/middleware"
	"github.com/mockmate/mockmate-api/pkg/helpers"
)

// QuestionModule registers the question routes, all behind auth:
// POST /api/questions/add, DELETE /api/questions/:id,
// POST /api/questions/:id/note, POST /api/questions/:id/pin

type QuestionModule struct {
	Handler *handlers.QuestionHandler
	JWT     *helpers.JWTManager
}

func NewQuestionModule(h *handlers.QuestionHandler, jwt *helpers.JWTManager) *QuestionModule {
	return &QuestionModule{Handler: h, JWT: jwt}
}

func (m *QuestionModule) Register(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.Use(middleware.Auth(container.GetRedis(), m.JWT))
	questions.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		questions.POST("/add", m.Handler.Add)
		questions.DELETE("/:id", m.Handler.Delete)
		questions.POST("/:id/note", m.Handler.UpdateNote)
		questions.POST("/:id/pin", m.Handler.TogglePin)
	}
}
