package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mockmate/mockmate-api/internal/application"
	"github.com/mockmate/mockmate-api/internal/interface/middleware"
	"github.com/mockmate/mockmate-api/pkg/response"
	"github.com/mockmate/mockmate-api/pkg/validation"
)

// SessionHandler exposes session CRUD plus search.
type SessionHandler struct {
	Svc    *application.SessionService
	Logger *logrus.Logger
}

func NewSessionHandler(svc *application.SessionService, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{Svc: svc, Logger: logger}
}

type questionAnswerInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type createSessionRequest struct {
	Role          string                `json:"role" binding:"required"`
	Experience    string                `json:"experience" binding:"required"`
	TopicsToFocus string                `json:"topicsToFocus" binding:"required"`
	Description   string                `json:"description"`
	Questions     []questionAnswerInput `json:"questions" binding:"dive"`
}

// Create POST /api/sessions/create
func (h *SessionHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.CreateSessionInput{
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
		Questions:     make([]application.QuestionAnswer, 0, len(req.Questions)),
	}
	for _, qa := range req.Questions {
		in.Questions = append(in.Questions, application.QuestionAnswer{Question: qa.Question, Answer: qa.Answer})
	}

	sess, err := h.Svc.CreateSession(c.Request.Context(), uid, in)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create session", nil)
		return
	}
	response.Success(c, http.StatusCreated, sess, "session created", nil)
}

// MySessions GET /api/sessions/my-sessions
func (h *SessionHandler) MySessions(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	sessions, err := h.Svc.ListSessions(c.Request.Context(), uid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("list sessions failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch sessions", nil)
		return
	}
	response.Success(c, http.StatusOK, sessions, "sessions", gin.H{"count": len(sessions)})
}

// GetByID GET /api/sessions/:id
func (h *SessionHandler) GetByID(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	sess, err := h.Svc.GetSession(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			response.Error[any](c, http.StatusNotFound, "session not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch session", nil)
		return
	}
	response.Success(c, http.StatusOK, sess, "session", nil)
}

// Delete DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteSession(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			response.Error[any](c, http.StatusNotFound, "session not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete session", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "session deleted successfully", nil)
}

// Search GET /api/sessions/search?q=...&size=...
func (h *SessionHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchSessions(c.Request.Context(), uid, q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
