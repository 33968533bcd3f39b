package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/mockmate-api/internal/application"
	"github.com/mockmate/mockmate-api/pkg/validation"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func aiTestRouter(gen application.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	h := NewAIHandler(application.NewAIService(gen, nil, 0), nil)
	r := gin.New()
	r.POST("/ai/generate-questions", h.GenerateQuestions)
	r.POST("/ai/generate-explanation", h.GenerateExplanation)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]\n```"}
	r := aiTestRouter(gen)

	w := postJSON(t, r, "/ai/generate-questions", `{"role":"Backend Engineer","experience":"3","topicsToFocus":"Go","numberOfQuestions":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Q1", resp.Data[0].Question)
}

func TestGenerateQuestionsEndpointValidation(t *testing.T) {
	r := aiTestRouter(&stubGenerator{})

	cases := []string{
		`{}`,
		`{"role":"x","experience":"3","topicsToFocus":"Go"}`,
		`{"role":"x","experience":"3","topicsToFocus":"Go","numberOfQuestions":0}`,
		`not json`,
	}
	for _, body := range cases {
		w := postJSON(t, r, "/ai/generate-questions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGenerateQuestionsEndpointUpstreamFailure(t *testing.T) {
	r := aiTestRouter(&stubGenerator{reply: "I cannot answer that."})

	w := postJSON(t, r, "/ai/generate-questions", `{"role":"x","experience":"3","topicsToFocus":"Go","numberOfQuestions":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestGenerateExplanationEndpoint(t *testing.T) {
	gen := &stubGenerator{reply: `{"title":"Goroutines","explanation":"Lightweight threads."}`}
	r := aiTestRouter(gen)

	w := postJSON(t, r, "/ai/generate-explanation", `{"question":"What is a goroutine?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Title       string `json:"title"`
			Explanation string `json:"explanation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Goroutines", resp.Data.Title)

	w = postJSON(t, r, "/ai/generate-explanation", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
