package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
	repo "github.com/mockmate/mockmate-api/internal/domain/repository"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService appends freshly generated questions to an existing
// session and manages single questions (delete, note, pin).
type QuestionService struct {
	Questions repo.QuestionRepository
	Sessions  repo.SessionRepository
	Logger    *logrus.Logger
}

func NewQuestionService(questions repo.QuestionRepository, sessions repo.SessionRepository, logger *logrus.Logger) *QuestionService {
	return &QuestionService{Questions: questions, Sessions: sessions, Logger: logger}
}

// AddQuestions bulk-inserts the pairs into the caller's session, appended
// after its existing questions, and returns the created rows.
func (s *QuestionService) AddQuestions(ctx context.Context, userID, sessionID string, pairs []QuestionAnswer) ([]entity.Question, error) {
	sess, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrSessionNotFound
	}

	qs := make([]entity.Question, 0, len(pairs))
	for _, qa := range pairs {
		qs = append(qs, entity.Question{Question: qa.Question, Answer: qa.Answer})
	}
	created, err := s.Questions.AddToSession(ctx, sessionID, qs)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("session_id", sessionID).Error("add questions failed")
		}
		return nil, err
	}
	return created, nil
}

// DeleteQuestion removes a single question. The owning session's reference
// is detached implicitly with the row; deleting an already-deleted id is a
// plain not-found.
func (s *QuestionService) DeleteQuestion(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}

func (s *QuestionService) UpdateNote(ctx context.Context, userID, id, note string) (*entity.Question, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	q, err := s.Questions.UpdateNote(ctx, id, note)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) TogglePin(ctx context.Context, userID, id string) (*entity.Question, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	q, err := s.Questions.TogglePin(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

// getOwned resolves the question and checks the owning session belongs to
// the caller. Both misses collapse to not-found so foreign ids do not leak.
func (s *QuestionService) getOwned(ctx context.Context, userID, id string) (*entity.Question, error) {
	q, err := s.Questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	sess, err := s.Sessions.GetByID(ctx, q.SessionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}
