package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrMalformedUpstream is returned when the model reply cannot be decoded
// into the expected JSON shape after fence stripping.
var ErrMalformedUpstream = errors.New("malformed upstream payload")

// TextGenerator is the outbound boundary to the generative-language API.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// QuestionAnswer is one generated interview question with its answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Explanation is the expanded walkthrough of a single question.
type Explanation struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// AIService turns structured input into a prompt and a raw model response
// back into structured output. Stateless apart from its collaborators.
type AIService struct {
	Generator TextGenerator
	Logger    *logrus.Logger
	Timeout   time.Duration
}

func NewAIService(gen TextGenerator, logger *logrus.Logger, timeout time.Duration) *AIService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AIService{Generator: gen, Logger: logger, Timeout: timeout}
}

// GenerateQuestions asks the model for count question/answer pairs for the
// given role, experience and topics.
func (s *AIService) GenerateQuestions(ctx context.Context, role, experience, topics string, count int) ([]QuestionAnswer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.Generator.GenerateText(ctx, questionAnswerPrompt(role, experience, topics, count))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("gemini question generation failed")
		}
		return nil, err
	}

	var out []QuestionAnswer
	if err := decodeFencedJSON(raw, &out); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("unparsable model reply for question generation")
		}
		return nil, ErrMalformedUpstream
	}
	if len(out) == 0 {
		return nil, ErrMalformedUpstream
	}
	for _, qa := range out {
		if qa.Question == "" || qa.Answer == "" {
			return nil, ErrMalformedUpstream
		}
	}
	return out, nil
}

// GenerateExplanation asks the model to explain a single interview question.
func (s *AIService) GenerateExplanation(ctx context.Context, question string) (*Explanation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.Generator.GenerateText(ctx, conceptExplainPrompt(question))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("gemini explanation generation failed")
		}
		return nil, err
	}

	var out Explanation
	if err := decodeFencedJSON(raw, &out); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("unparsable model reply for explanation")
		}
		return nil, ErrMalformedUpstream
	}
	if out.Title == "" || out.Explanation == "" {
		return nil, ErrMalformedUpstream
	}
	return &out, nil
}

// stripFences removes a leading ``` marker (optionally followed by a
// language tag such as "json") and a trailing ``` marker, then trims
// surrounding whitespace. Input without fences passes through untouched.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			first := strings.TrimSpace(s[:nl])
			// A bare language tag sits alone on the fence line.
			if first == "" || !strings.ContainsAny(first, "{[") {
				s = s[nl+1:]
			}
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func decodeFencedJSON(raw string, dest any) error {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return errors.New("empty payload after fence stripping")
	}
	return json.Unmarshal([]byte(cleaned), dest)
}

func questionAnswerPrompt(role, experience, topics string, count int) string {
	return fmt.Sprintf(`You are an AI trained to generate technical interview questions and answers.

Task:
- Role: %s
- Candidate Experience: %s years
- Focus Topics: %s
- Write %d interview questions.
- For each question, generate a detailed but beginner-friendly answer.
- If the answer needs a code example, add a small code block inside.
- Keep formatting very clean.
- Return a pure JSON array like:
[
  {
    "question": "Question here?",
    "answer": "Answer here."
  }
]
Important: Do NOT add any extra text. Only return valid JSON.`, role, experience, topics, count)
}

func conceptExplainPrompt(question string) string {
	return fmt.Sprintf(`You are an AI trained to generate explanations for a given interview question.

Task:
- Explain the following interview question and its concept in depth as if you're teaching a beginner developer.
- Question: "%s"
- After the explanation, provide a short and clear title that summarizes the concept for the article or page header.
- If the explanation includes a code example, provide a small code block.
- Keep the formatting very clean and clear.
- Return the result as a valid JSON object in the following format:
{
  "title": "Short title here",
  "explanation": "Explanation here."
}
Important: Do NOT add any extra text outside the JSON format. Only return valid JSON.`, question)
}
