package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced with json tag", "```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```", `[{"question":"Q","answer":"A"}]`},
		{"fenced without tag", "```\n{\"title\":\"T\"}\n```", `{"title":"T"}`},
		{"no fences", `{"title":"T"}`, `{"title":"T"}`},
		{"surrounding whitespace", "  \n```json\n[1]\n```\n  ", `[1]`},
		{"payload on fence line", "```{\"title\":\"T\"}\n```", `{"title":"T"}`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFences(tc.in))
		})
	}
}

func TestGenerateQuestions(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n[{\"question\":\"What is a goroutine?\",\"answer\":\"A lightweight thread.\"},{\"question\":\"What is a channel?\",\"answer\":\"A typed conduit.\"}]\n```"}
	svc := NewAIService(gen, nil, 0)

	out, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "3", "Go", 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "What is a goroutine?", out[0].Question)
	assert.Equal(t, "A typed conduit.", out[1].Answer)

	assert.Contains(t, gen.lastPrompt, "Backend Engineer")
	assert.Contains(t, gen.lastPrompt, "Write 2 interview questions")
}

func TestGenerateQuestionsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"not json", "Sure! Here are your questions:"},
		{"empty array", "[]"},
		{"empty payload", "```json\n```"},
		{"missing answer", `[{"question":"Q","answer":""}]`},
		{"object not array", `{"question":"Q","answer":"A"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAIService(&fakeGenerator{reply: tc.reply}, nil, 0)
			_, err := svc.GenerateQuestions(context.Background(), "r", "e", "t", 1)
			assert.ErrorIs(t, err, ErrMalformedUpstream)
		})
	}
}

func TestGenerateQuestionsUpstreamError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewAIService(&fakeGenerator{err: boom}, nil, 0)

	_, err := svc.GenerateQuestions(context.Background(), "r", "e", "t", 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMalformedUpstream)
}

func TestGenerateExplanation(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"title\":\"Goroutines\",\"explanation\":\"They are cheap.\"}\n```"}
	svc := NewAIService(gen, nil, 0)

	exp, err := svc.GenerateExplanation(context.Background(), "What is a goroutine?")
	require.NoError(t, err)
	assert.Equal(t, "Goroutines", exp.Title)
	assert.Equal(t, "They are cheap.", exp.Explanation)
	assert.Contains(t, gen.lastPrompt, "What is a goroutine?")
}

func TestGenerateExplanationMalformed(t *testing.T) {
	for _, reply := range []string{"plain text", `{"title":"","explanation":"x"}`, `{"title":"x","explanation":""}`} {
		svc := NewAIService(&fakeGenerator{reply: reply}, nil, 0)
		_, err := svc.GenerateExplanation(context.Background(), "Q")
		assert.ErrorIs(t, err, ErrMalformedUpstream)
	}
}
