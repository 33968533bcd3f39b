package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mockmate/mockmate-api/internal/application"
	"github.com/mockmate/mockmate-api/internal/interface/middleware"
	"github.com/mockmate/mockmate-api/pkg/response"
	"github.com/mockmate/mockmate-api/pkg/validation"
)

// QuestionHandler exposes the "load more" append flow and per-question routes.
type QuestionHandler struct {
	Svc    *application.QuestionService
	Logger *logrus.Logger
}

func NewQuestionHandler(svc *application.QuestionService, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{Svc: svc, Logger: logger}
}

type addQuestionsRequest struct {
	SessionID string                `json:"sessionId" binding:"required"`
	Questions []questionAnswerInput `json:"questions" binding:"required,min=1,dive"`
}

type updateNoteRequest struct {
	Note string `json:"note"`
}

// Add POST /api/questions/add
func (h *QuestionHandler) Add(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req addQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid input data", validation.ToDetails(err))
		return
	}

	pairs := make([]application.QuestionAnswer, 0, len(req.Questions))
	for _, qa := range req.Questions {
		pairs = append(pairs, application.QuestionAnswer{Question: qa.Question, Answer: qa.Answer})
	}

	created, err := h.Svc.AddQuestions(c.Request.Context(), uid, req.SessionID, pairs)
	if err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			response.Error[any](c, http.StatusNotFound, "session not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to add questions", nil)
		return
	}
	response.Success(c, http.StatusCreated, created, "questions added", gin.H{"count": len(created)})
}

// Delete DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteQuestion(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Error[any](c, http.StatusNotFound, "question not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete question", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "question deleted successfully", nil)
}

// UpdateNote POST /api/questions/:id/note
func (h *QuestionHandler) UpdateNote(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.UpdateNote(c.Request.Context(), uid, c.Param("id"), req.Note)
	if err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Error[any](c, http.StatusNotFound, "question not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update note", nil)
		return
	}
	response.Success(c, http.StatusOK, q, "note updated", nil)
}

// TogglePin POST /api/questions/:id/pin
func (h *QuestionHandler) TogglePin(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	q, err := h.Svc.TogglePin(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Error[any](c, http.StatusNotFound, "question not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to toggle pin", nil)
		return
	}
	response.Success(c, http.StatusOK, q, "pin toggled", nil)
}
