package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mockmate/mockmate-api/internal/container"
	handlers "github.com/mockmate/mockmate-api/internal/interface/http"
	"github.com/mockmate/mockmate-api/internal/interface/middleware"
	"github.com/mockmate/mockmate-api/pkg/helpers"
)

// SessionModule registers the interview session routes, all behind auth:
// POST /api/sessions/create, GET /api/sessions/my-sessions,
// GET /api/sessions/search, GET /api/sessions/:id, DELETE /api/sessions/:id

type SessionModule struct {
	Handler *handlers.SessionHandler
	JWT     *helpers.JWTManager
}

func NewSessionModule(h *handlers.SessionHandler, jwt *helpers.JWTManager) *SessionModule {
	return &SessionModule{Handler: h, JWT: jwt}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	sessions.Use(middleware.Auth(container.GetRedis(), m.JWT))
	sessions.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		sessions.POST("/create", m.Handler.Create)
		sessions.GET("/my-sessions", m.Handler.MySessions)
		sessions.GET("/search", m.Handler.Search)
		sessions.GET("/:id", m.Handler.GetByID)
		sessions.DELETE("/:id", m.Handler.Delete)
	}
}
