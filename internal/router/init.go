package router

import (
	"github.com/mockmate/mockmate-api/internal/application"
	"github.com/mockmate/mockmate-api/internal/container"
	pginfra "github.com/mockmate/mockmate-api/internal/infrastructure/postgres"
	handlers "github.com/mockmate/mockmate-api/internal/interface/http"
	"github.com/mockmate/mockmate-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	sessionRepo := pginfra.NewSessionRepository(pool)
	questionRepo := pginfra.NewQuestionRepository(pool)

	userService := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	sessionService := application.NewSessionService(sessionRepo, logger, container.GetES(), cfg.ESSessionsIndex)
	questionService := application.NewQuestionService(questionRepo, sessionRepo, logger)
	aiService := application.NewAIService(container.GetGenerator(), logger, 0)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userService, logger), container.GetJWT()))
	r.Add(modules.NewSessionModule(handlers.NewSessionHandler(sessionService, logger), container.GetJWT()))
	r.Add(modules.NewQuestionModule(handlers.NewQuestionHandler(questionService, logger), container.GetJWT()))
	r.Add(modules.NewAIModule(handlers.NewAIHandler(aiService, logger), container.GetJWT()))
}
