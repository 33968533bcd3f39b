package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mockmate/mockmate-api/internal/application"
	"github.com/mockmate/mockmate-api/pkg/response"
	"github.com/mockmate/mockmate-api/pkg/validation"
)

// AIHandler fronts the generative-language proxy.
type AIHandler struct {
	Svc    *application.AIService
	Logger *logrus.Logger
}

func NewAIHandler(svc *application.AIService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{Svc: svc, Logger: logger}
}

type generateQuestionsRequest struct {
	Role              string `json:"role" binding:"required"`
	Experience        string `json:"experience" binding:"required"`
	TopicsToFocus     string `json:"topicsToFocus" binding:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" binding:"required,gt=0"`
}

type generateExplanationRequest struct {
	Question string `json:"question" binding:"required"`
}

// GenerateQuestions POST /api/ai/generate-questions
func (h *AIHandler) GenerateQuestions(c *gin.Context) {
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing required fields", validation.ToDetails(err))
		return
	}

	qas, err := h.Svc.GenerateQuestions(c.Request.Context(), req.Role, req.Experience, req.TopicsToFocus, req.NumberOfQuestions)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to generate questions", nil)
		return
	}
	response.Success(c, http.StatusOK, qas, "questions generated", nil)
}

// GenerateExplanation POST /api/ai/generate-explanation
func (h *AIHandler) GenerateExplanation(c *gin.Context) {
	var req generateExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing required fields", validation.ToDetails(err))
		return
	}

	exp, err := h.Svc.GenerateExplanation(c.Request.Context(), req.Question)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to generate explanation", nil)
		return
	}
	response.Success(c, http.StatusOK, exp, "explanation generated", nil)
}
